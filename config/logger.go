package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	// 不同级别的日志记录器
	InfoLogger    *log.Logger
	WarningLogger *log.Logger
	ErrorLogger   *log.Logger
)

// SetupLogger 初始化日志配置，日志同时输出到控制台和按天滚动的文件
func SetupLogger() error {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("创建日志目录失败: %v", err)
	}

	// 以当前日期命名日志文件
	logFileName := filepath.Join(logDir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("打开日志文件失败: %v", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)

	InfoLogger = log.New(multiWriter, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(multiWriter, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(multiWriter, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

// logf 输出日志，未初始化时退回标准logger
func logf(logger *log.Logger, prefix, format string, v ...interface{}) {
	if logger == nil {
		log.Printf(prefix+format, v...)
		return
	}
	logger.Printf(format, v...)
}

// Info 记录信息级别的日志
func Info(format string, v ...interface{}) {
	logf(InfoLogger, "INFO: ", format, v...)
}

// Warning 记录警告级别的日志
func Warning(format string, v ...interface{}) {
	logf(WarningLogger, "WARNING: ", format, v...)
}

// Error 记录错误级别的日志
func Error(format string, v ...interface{}) {
	logf(ErrorLogger, "ERROR: ", format, v...)
}
