package util

var GLOBAL_LOG_LEVEL = LogLevelWarning
var GLOBAL_LOG_CATEGORIES = LogRaycast | LogBounds | LogScene | LogIO

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogRaycast LogCategory = 1 << iota
	LogBounds
	LogScene
	LogIO
)

var logSink = func(txt string) {
	println(txt)
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	logSink(txt)
}

func LogRaycastDebug(txt string) {
	log(LogRaycast, LogLevelDebug, txt)
}

func LogRaycastWarning(txt string) {
	log(LogRaycast, LogLevelWarning, txt)
}

func LogBoundsDebug(txt string) {
	log(LogBounds, LogLevelDebug, txt)
}

func LogBoundsError(txt string) {
	log(LogBounds, LogLevelError, txt)
}

func LogSceneInfo(txt string) {
	log(LogScene, LogLevelInfo, txt)
}

func LogSceneDebug(txt string) {
	log(LogScene, LogLevelDebug, txt)
}

func LogSceneError(txt string) {
	log(LogScene, LogLevelError, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}
