package logging

import (
	"log"
	"os"
)

var (
	InfoLog = log.New(os.Stdout, "[Info] ", log.LstdFlags)
	WarnLog = log.New(os.Stdout, "[Warn] ", log.LstdFlags)
	ErrLog  = log.New(os.Stderr, "[Error] ", log.LstdFlags|log.Lshortfile)
)
