// Package riskctrl audits the vault reserve against the effective
// token supply and alerts by email when the books diverge.
package riskctrl

import (
	"fmt"
	"math/big"
	"time"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/endpoint"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"github.com/rebasefi/CrossChain-RebaseToken/params"
	"github.com/rebasefi/CrossChain-RebaseToken/tools"
)

const defaultCheckInterval = 30 // seconds

var (
	riskConfig  *params.RiskCtrlConfig
	emailConfig *params.EmailConfig

	maxSupplyExcess *big.Int

	prevSendAuditEmailTimestamp int64
	minSendAuditEmailInterval   int64 = 1800 // unit seconds
)

// StartWork start risk control work
func StartWork() {
	config := params.GetConfig()
	riskConfig = config.RiskCtrl
	if riskConfig == nil || !riskConfig.Enable {
		log.Info("risk control is disabled")
		return
	}
	if !params.IsVaultEnabled() {
		log.Warn("risk control needs an enabled vault, skip")
		return
	}

	maxSupplyExcess = common.Big0
	if riskConfig.MaxSupplyExcess != "" {
		var err error
		maxSupplyExcess, err = common.GetBigIntFromStr(riskConfig.MaxSupplyExcess)
		if err != nil {
			log.Fatalf("wrong risk ctrl max supply excess %v: %v", riskConfig.MaxSupplyExcess, err)
		}
	}

	emailConfig = config.Email
	if emailConfig != nil {
		tools.InitEmailConfig(emailConfig.Server, emailConfig.Port,
			emailConfig.From, emailConfig.FromName, emailConfig.Password)
	}

	checkInterval := riskConfig.CheckInterval
	if checkInterval == 0 {
		checkInterval = defaultCheckInterval
	}

	log.Info("start risk control work",
		"checkInterval", checkInterval,
		"maxSupplyExcess", maxSupplyExcess,
		"emailAlert", emailConfig != nil)

	go func() {
		for {
			auditOnce()
			time.Sleep(time.Duration(checkInterval) * time.Second)
		}
	}()
}

func auditOnce() {
	reserve := endpoint.Vault().Reserve()
	supply := endpoint.Ledger().EffectiveSupply()

	excess := new(big.Int).Sub(supply, reserve)
	if excess.Cmp(maxSupplyExcess) > 0 {
		log.Error("[risk] effective supply exceeds vault reserve",
			"reserve", reserve, "supply", supply,
			"excess", excess, "maxSupplyExcess", maxSupplyExcess)
		subject := fmt.Sprintf("[risk] effective supply exceeds vault reserve on chain %v", params.GetChainID())
		content := fmt.Sprintf("reserve=%v\nsupply=%v\nexcess=%v\nmaxSupplyExcess=%v\ntime=%v\n",
			reserve, supply, excess, maxSupplyExcess, time.Now().Format(time.RFC3339))
		_ = sendAuditEmail(subject, content)
		return
	}
	log.Info("[risk] normal reserve and effective supply",
		"reserve", reserve, "supply", supply, "excess", excess)
}

func sendAuditEmail(subject, content string) error {
	if emailConfig == nil {
		return nil
	}
	now := time.Now().Unix()
	if prevSendAuditEmailTimestamp+minSendAuditEmailInterval > now {
		return nil // too frequently
	}
	prevSendAuditEmailTimestamp = now
	err := tools.SendEmail(emailConfig.To, emailConfig.Cc, subject, content)
	if err != nil {
		log.Error("[risk] send audit email failed", "subject", subject, "err", err)
	} else {
		log.Info("[risk] send audit email success", "subject", subject)
	}
	return err
}
