package encryption

import (
	"time"

	"github.com/godruoyi/go-snowflake"
)

// InitSnowflake sets the machine ID and start time for ID generation.
func InitSnowflake(machineID uint16) {
	snowflake.SetMachineID(machineID)
	snowflake.SetStartTime(time.Date(2024, 10, 24, 0, 0, 0, 0, time.UTC))
}

// GenerateID returns a new snowflake ID.
func GenerateID() uint64 {
	return snowflake.ID()
}
