package params

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
)

const testConfigToml = `
Identifier = "rbt-test"
ChainID = "chain-a"
Admins = ["0xadmin"]

[Ledger]
InitialGlobalRate = "50000000000000000"
RateAdmins = ["0xadmin"]

[Vault]
Enable = true

[[Peers]]
ChainID = "chain-b"
APIAddress = "http://127.0.0.1:12557"

[MongoDB]
DBURL = "127.0.0.1:27017"
DBName = "rbtbridge"

[APIServer]
Port = 12556
AllowedOrigins = []
MaxRequestsLimit = 10

[Extra]
IsDebugMode = true
`

func TestLoadAndCheckConfig(t *testing.T) {
	config := &Config{}
	_, err := toml.Decode(testConfigToml, config)
	assert.Nil(t, err)
	SetConfig(config)

	assert.Nil(t, CheckConfig(true))
	assert.Equal(t, "rbt-test", GetIdentifier())
	assert.Equal(t, "chain-a", GetChainID())
	assert.Equal(t, 12556, GetAPIPort())
	assert.True(t, IsVaultEnabled())
	assert.True(t, IsDebugMode())
	assert.False(t, IsTestMode())
	assert.True(t, IsAdmin("0xAdmin"))
	assert.False(t, IsAdmin("0xother"))
}

func TestCheckConfigFailures(t *testing.T) {
	config := &Config{}
	_, err := toml.Decode(testConfigToml, config)
	assert.Nil(t, err)

	config.Ledger.InitialGlobalRate = "0"
	SetConfig(config)
	assert.NotNil(t, CheckConfig(true))

	config.Ledger.InitialGlobalRate = "not-a-number"
	assert.NotNil(t, CheckConfig(true))

	config.Ledger.InitialGlobalRate = "50000000000000000"
	config.Peers[0].APIAddress = ""
	assert.NotNil(t, CheckConfig(true))
}
