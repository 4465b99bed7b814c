package util

import (
	"crypto/sha256"
	"fmt"
	"os"
)

func Sha256Sum(str string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(str)))
}

func FileOrDirExists(fileOrDir string) (bool, error) {
	_, err := os.Stat(fileOrDir)
	if err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, err
	}
}

