// Package params holds the endpoint configuration decoded from toml.
package params

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
)

const defaultAPIPort = 12556

var (
	locDataDir  string
	locPeersDir string

	endpointConfig    *Config
	loadConfigStarter sync.Once

	// IsServerMode if true this process runs the full endpoint with
	// mongodb and worker jobs, otherwise a query only node
	IsServerMode bool
)

// Config items (decode from toml file)
type Config struct {
	Identifier string
	ChainID    string

	Ledger    *LedgerConfig
	Vault     *VaultConfig       `toml:",omitempty" json:",omitempty"`
	Peers     []*PeerChainConfig `toml:",omitempty" json:",omitempty"`
	MongoDB   *MongoDBConfig     `toml:",omitempty" json:",omitempty"`
	APIServer *APIServerConfig
	Email     *EmailConfig    `toml:",omitempty" json:",omitempty"`
	RiskCtrl  *RiskCtrlConfig `toml:",omitempty" json:",omitempty"`
	Admins    []string        `toml:",omitempty" json:",omitempty"`
	Extra     *ExtraConfig    `toml:",omitempty" json:",omitempty"`
}

// LedgerConfig ledger config
type LedgerConfig struct {
	// InitialGlobalRate is the fixed point per annum rate assigned to
	// newly funded accounts, 1e18 means 100%
	InitialGlobalRate string
	RateAdmins        []string
	Operators         []string `toml:",omitempty" json:",omitempty"`
}

// VaultConfig vault config
type VaultConfig struct {
	Enable bool
}

// PeerChainConfig peer chain config
type PeerChainConfig struct {
	ChainID    string
	APIAddress string
}

// APIServerConfig api service config
type APIServerConfig struct {
	Port             int
	AllowedOrigins   []string
	MaxRequestsLimit int
}

// MongoDBConfig mongodb config
type MongoDBConfig struct {
	DBURL    string
	DBName   string
	UserName string `json:"-"`
	Password string `json:"-"`
}

// EmailConfig email alert config
type EmailConfig struct {
	Server   string
	Port     int
	From     string
	FromName string `toml:",omitempty" json:",omitempty"`
	Password string `json:"-"`
	To       []string
	Cc       []string `toml:",omitempty" json:",omitempty"`
}

// RiskCtrlConfig risk control config
type RiskCtrlConfig struct {
	Enable        bool
	CheckInterval uint64 // seconds
	// MaxSupplyExcess is the tolerated fixed point amount by which the
	// effective supply may exceed the vault reserve (bridged in balance
	// has no local custody)
	MaxSupplyExcess string `toml:",omitempty" json:",omitempty"`
}

// ExtraConfig extra config
type ExtraConfig struct {
	IsTestMode  bool `toml:",omitempty" json:",omitempty"`
	IsDebugMode bool `toml:",omitempty" json:",omitempty"`
}

// GetConfig get endpoint config
func GetConfig() *Config {
	return endpointConfig
}

// SetConfig set endpoint config
func SetConfig(config *Config) {
	endpointConfig = config
}

// GetIdentifier get identifier
func GetIdentifier() string {
	return GetConfig().Identifier
}

// GetChainID get the local chain id
func GetChainID() string {
	return GetConfig().ChainID
}

// GetAPIPort get api service port
func GetAPIPort() int {
	apiPort := GetConfig().APIServer.Port
	if apiPort == 0 {
		apiPort = defaultAPIPort
	}
	return apiPort
}

// IsVaultEnabled is vault enabled
func IsVaultEnabled() bool {
	return GetConfig().Vault != nil && GetConfig().Vault.Enable
}

// IsTestMode is test mode (in process loopback transport, no mongodb)
func IsTestMode() bool {
	extra := GetConfig().Extra
	return extra != nil && extra.IsTestMode
}

// IsDebugMode is debug mode, add more debugging log infos
func IsDebugMode() bool {
	extra := GetConfig().Extra
	return extra != nil && extra.IsDebugMode
}

// HasAdmin has admin
func HasAdmin() bool {
	return len(GetConfig().Admins) != 0
}

// IsAdmin is admin
func IsAdmin(account string) bool {
	for _, admin := range GetConfig().Admins {
		if strings.EqualFold(account, admin) {
			return true
		}
	}
	return false
}

// LoadConfig load config
func LoadConfig(configFile string, isServer bool) *Config {
	loadConfigStarter.Do(func() {
		if configFile == "" {
			log.Fatalf("LoadConfig error: no config file specified")
		}
		log.Println("Config file is", configFile)
		if !common.FileExist(configFile) {
			log.Fatalf("LoadConfig error: config file %v not exist", configFile)
		}
		config := &Config{}
		if _, err := toml.DecodeFile(configFile, &config); err != nil {
			log.Fatalf("LoadConfig error (toml DecodeFile): %v", err)
		}

		SetConfig(config)
		var bs []byte
		if log.JSONFormat {
			bs, _ = json.Marshal(config)
		} else {
			bs, _ = json.MarshalIndent(config, "", "  ")
		}
		log.Println("LoadConfig finished.", string(bs))
		if err := CheckConfig(isServer); err != nil {
			log.Fatalf("Check config failed. %v", err)
		}
		log.Info("Check config success", "isServer", isServer, "configFile", configFile)
	})
	return endpointConfig
}

// SetDataDir set data dir
func SetDataDir(dir string) {
	if dir == "" {
		return
	}
	currDir, err := common.CurrentDir()
	if err != nil {
		log.Fatal("get current dir failed", "err", err)
	}
	locDataDir = common.AbsolutePath(currDir, dir)
	log.Info("set data dir success", "datadir", locDataDir)
}

// GetDataDir get data dir
func GetDataDir() string {
	return locDataDir
}

// SetPeersDir set the dir watched for dynamically added peer configs
func SetPeersDir(dir string) {
	locPeersDir = dir
}

// GetPeersDir get peers dir
func GetPeersDir() string {
	return locPeersDir
}
