package utils

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/gin-gonic/gin"
)

func PrintAppBanner(port string) {
	infoBoxStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")). // Cyan text
		Border(lipgloss.RoundedBorder()).
		Padding(0, 10).
		Align(lipgloss.Center)

	info := fmt.Sprintf(`
E-Learning API
Gin Version: %s
IP: http://127.0.0.1:%s

Mongodb: Successfully connected
`, gin.Version, port)

	fmt.Println(infoBoxStyle.Render(info))
}
