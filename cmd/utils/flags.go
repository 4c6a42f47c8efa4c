package utils

import (
	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"github.com/urfave/cli/v2"
)

var (
	// ConfigFileFlag specify config file
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// DataDirFlag specify data dir
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Specify data directory (store delivered payload index)",
	}
	// PeersDirFlag specify peers dir
	PeersDirFlag = &cli.StringFlag{
		Name:  "peersdir",
		Usage: "Specify directory watched for dynamically added peer chain config files",
	}
	// LogFileFlag specify log file
	LogFileFlag = &cli.StringFlag{
		Name:  "log.file",
		Usage: "Specify log file, support rotate",
	}
	// LogRotationFlag specify log rotation time
	LogRotationFlag = &cli.Uint64Flag{
		Name:  "log.rotate",
		Usage: "log rotation time (unit hour)",
		Value: 24,
	}
	// LogMaxAgeFlag specify log max age
	LogMaxAgeFlag = &cli.Uint64Flag{
		Name:  "log.maxage",
		Usage: "log max age (unit hour)",
		Value: 720,
	}
	// VerbosityFlag specify log verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   4,
	}
	// JSONFormatFlag output log in json format
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag output log in color text format
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}
)

// SetLogger set logger from the log related flags
func SetLogger(ctx *cli.Context) {
	logLevel := ctx.Uint64(VerbosityFlag.Name)
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)

	logFile := ctx.String(LogFileFlag.Name)
	if logFile != "" {
		logRotation := ctx.Uint64(LogRotationFlag.Name)
		logMaxAge := ctx.Uint64(LogMaxAgeFlag.Name)
		log.SetLogFile(logFile, logRotation, logMaxAge)
	}
}

// GetConfigFilePath get config file path
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}

// GetDataDir get data dir
func GetDataDir(ctx *cli.Context) string {
	return ctx.String(DataDirFlag.Name)
}

// GetPeersDir get peers dir
func GetPeersDir(ctx *cli.Context) string {
	return ctx.String(PeersDirFlag.Name)
}
