package params

import (
	"errors"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
)

// CheckConfig check config
func CheckConfig(isServer bool) (err error) {
	config := GetConfig()
	if config.Identifier == "" {
		return errors.New("server must config 'Identifier'")
	}
	if config.ChainID == "" {
		return errors.New("server must config 'ChainID'")
	}
	if err = config.Ledger.CheckConfig(); err != nil {
		return err
	}
	if isServer {
		if config.MongoDB == nil && !IsTestMode() {
			return errors.New("server must config 'MongoDB'")
		}
		if config.APIServer == nil {
			return errors.New("server must config 'APIServer'")
		}
	}
	for _, peer := range config.Peers {
		if err = peer.CheckConfig(); err != nil {
			return err
		}
	}
	if config.RiskCtrl != nil && config.RiskCtrl.Enable {
		if config.Email == nil {
			return errors.New("risk control needs config 'Email'")
		}
		if err = config.Email.CheckConfig(); err != nil {
			return err
		}
		if config.RiskCtrl.MaxSupplyExcess != "" {
			if _, err = common.GetBigIntFromStr(config.RiskCtrl.MaxSupplyExcess); err != nil {
				return errors.New("wrong risk control config 'MaxSupplyExcess'")
			}
		}
	}
	return nil
}

// CheckConfig check ledger config
func (c *LedgerConfig) CheckConfig() error {
	if c == nil {
		return errors.New("server must config 'Ledger'")
	}
	rate, err := common.GetBigIntFromStr(c.InitialGlobalRate)
	if err != nil {
		return errors.New("ledger must config 'InitialGlobalRate' as integer string")
	}
	if rate.Sign() <= 0 {
		return errors.New("ledger config 'InitialGlobalRate' must be positive")
	}
	if len(c.RateAdmins) == 0 {
		return errors.New("ledger must config 'RateAdmins'")
	}
	return nil
}

// CheckConfig check peer chain config
func (c *PeerChainConfig) CheckConfig() error {
	if c.ChainID == "" {
		return errors.New("peer must config 'ChainID'")
	}
	if c.APIAddress == "" {
		return errors.New("peer must config 'APIAddress'")
	}
	return nil
}

// CheckConfig check email config
func (c *EmailConfig) CheckConfig() error {
	if c.Server == "" || c.Port == 0 {
		return errors.New("email must config 'Server' and 'Port'")
	}
	if c.From == "" {
		return errors.New("email must config 'From'")
	}
	if len(c.To) == 0 {
		return errors.New("email must config 'To'")
	}
	return nil
}
