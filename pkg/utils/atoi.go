package utils

import "strconv"

func StrToUint64(str string) (uint64, error) {
	i, err := strconv.ParseUint(str, 10, 64)
	return i, err
}

func Uint64ToStr(id uint64) string {
	return strconv.FormatUint(id, 10)
}
