// Package ledgerapi is the service layer behind the rest and rpc apis.
package ledgerapi

import (
	"math/big"
	"strings"

	"github.com/rebasefi/CrossChain-RebaseToken/bridge"
	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/endpoint"
	"github.com/rebasefi/CrossChain-RebaseToken/ledger"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"github.com/rebasefi/CrossChain-RebaseToken/mongodb"
	"github.com/rebasefi/CrossChain-RebaseToken/params"
	rpcjson "github.com/gorilla/rpc/v2/json2"
)

var (
	errVaultDisabled     = newRPCError(-32096, "vault is disabled")
	errNotAdmin          = newRPCError(-32095, "caller is not admin")
	errUnknownCapability = newRPCError(-32094, "unknown capability")
	errNoMongodb         = newRPCError(-32093, "no database connected")
)

func newRPCError(ec rpcjson.ErrorCode, message string) error {
	return &rpcjson.Error{
		Code:    ec,
		Message: message,
	}
}

func newRPCInternalError(err error) error {
	return newRPCError(-32000, "rpcError: "+err.Error())
}

// parseAmount parses a decimal amount, the keywords 'max' and 'all' map
// to the full balance sentinel.
func parseAmount(str string) (*big.Int, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "max", "all":
		return common.MaxUint256, nil
	}
	return common.GetBigIntFromStr(str)
}

// GetServerInfo api
func GetServerInfo() (*ServerInfo, error) {
	log.Debug("[api] receive GetServerInfo")
	config := params.GetConfig()
	if config == nil {
		return nil, nil
	}
	return &ServerInfo{
		Identifier:   config.Identifier,
		ChainID:      config.ChainID,
		GlobalRate:   endpoint.Ledger().GetGlobalRate().String(),
		VaultEnabled: params.IsVaultEnabled(),
		Peers:        config.Peers,
		Version:      params.VersionWithMeta,
	}, nil
}

// GetVersionInfo api
func GetVersionInfo() (string, error) {
	return params.VersionWithMeta, nil
}

// GetBalanceInfo api
func GetBalanceInfo(account string) (*BalanceInfo, error) {
	log.Debug("[api] receive GetBalanceInfo", "account", account)
	l := endpoint.Ledger()
	return &BalanceInfo{
		Account:      account,
		Balance:      l.BalanceOf(account).String(),
		Principal:    l.PrincipalOf(account).String(),
		PersonalRate: l.GetPersonalRate(account).String(),
	}, nil
}

// GetGlobalRate api
func GetGlobalRate() (string, error) {
	return endpoint.Ledger().GetGlobalRate().String(), nil
}

// GetPersonalRate api
func GetPersonalRate(account string) (string, error) {
	return endpoint.Ledger().GetPersonalRate(account).String(), nil
}

// Transfer api
func Transfer(args *TransferArgs) (string, error) {
	log.Info("[api] receive Transfer", "sender", args.Sender, "recipient", args.Recipient, "amount", args.Amount)
	amount, err := parseAmount(args.Amount)
	if err != nil {
		return "", newRPCInternalError(err)
	}
	if err := endpoint.Ledger().Transfer(args.Sender, args.Recipient, amount); err != nil {
		return "", newRPCInternalError(err)
	}
	return SuccessPostResult, nil
}

// Deposit api
func Deposit(args *VaultArgs) (string, error) {
	log.Info("[api] receive Deposit", "account", args.Account, "amount", args.Amount)
	v := endpoint.Vault()
	if v == nil {
		return "", errVaultDisabled
	}
	amount, err := parseAmount(args.Amount)
	if err != nil {
		return "", newRPCInternalError(err)
	}
	if err := v.Deposit(args.Account, amount); err != nil {
		return "", newRPCInternalError(err)
	}
	if mongodb.HasClient() {
		_ = mongodb.AddVaultRecord(args.Account, mongodb.VaultActionDeposit, amount.String(), common.Now())
	}
	return SuccessPostResult, nil
}

// Redeem api
func Redeem(args *VaultArgs) (*RedeemResult, error) {
	log.Info("[api] receive Redeem", "account", args.Account, "amount", args.Amount)
	v := endpoint.Vault()
	if v == nil {
		return nil, errVaultDisabled
	}
	amount, err := parseAmount(args.Amount)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	released, err := v.Redeem(args.Account, amount)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	if mongodb.HasClient() {
		_ = mongodb.AddVaultRecord(args.Account, mongodb.VaultActionRedeem, released.String(), common.Now())
	}
	return &RedeemResult{
		Account:  args.Account,
		Released: released.String(),
	}, nil
}

// SendCrossChain api. Burns locally and registers the outbound transfer
// for the dispatch job. In test mode the loopback transport delivers
// synchronously instead.
func SendCrossChain(args *CrossChainArgs) (*CrossChainResult, error) {
	log.Info("[api] receive SendCrossChain",
		"sender", args.Sender, "receiver", args.Receiver,
		"destChainID", args.DestChainID, "amount", args.Amount)
	amount, err := parseAmount(args.Amount)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	adapter := endpoint.Adapter()
	payload, encoded, err := adapter.SendOut(args.Sender, args.Receiver, args.DestChainID, amount)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	transferID := bridge.TransferID(encoded).Hex()
	switch {
	case mongodb.HasClient():
		mt := &mongodb.MgoCrossTransfer{
			Key:          transferID,
			Sender:       payload.Sender,
			Receiver:     payload.Receiver,
			SrcChainID:   payload.SrcChainID,
			DestChainID:  payload.DestChainID,
			Value:        payload.Amount.String(),
			PersonalRate: payload.PersonalRate.String(),
			Payload:      common.ToHex(encoded),
			Status:       mongodb.TxRegistered,
			InitTime:     payload.Timestamp,
			Timestamp:    common.Now(),
		}
		if err := mongodb.AddCrossTransfer(mt); err != nil {
			// the burn may not outlive a lost registration,
			// restore the sender at the carried rate
			if mintErr := endpoint.Ledger().Mint(endpoint.BridgePrincipal,
				payload.Sender, payload.Amount, payload.PersonalRate); mintErr != nil {
				log.Error("restore burned balance failed",
					"transferID", transferID, "sender", payload.Sender, "err", mintErr)
			}
			return nil, err
		}
	default:
		// no database, deliver synchronously (test mode)
		if err := endpoint.Transport().Deliver(payload.DestChainID, encoded); err != nil {
			return nil, newRPCInternalError(err)
		}
	}
	return &CrossChainResult{
		TransferID:   transferID,
		Sender:       payload.Sender,
		Receiver:     payload.Receiver,
		SrcChainID:   payload.SrcChainID,
		DestChainID:  payload.DestChainID,
		Value:        payload.Amount.String(),
		PersonalRate: payload.PersonalRate.String(),
		Payload:      common.ToHex(encoded),
	}, nil
}

// DeliverPayload api. Inbound fulfillment called by the peer endpoint's
// dispatch job (or any transport relayer).
func DeliverPayload(payloadHex string) (string, error) {
	log.Info("[api] receive DeliverPayload")
	encoded, err := common.FromHex(payloadHex)
	if err != nil {
		return "", newRPCInternalError(err)
	}
	transferID := bridge.TransferID(encoded).Hex()
	payload, err := endpoint.Adapter().ReceiveIn(encoded)
	if err != nil {
		if mongodb.HasClient() {
			result := &mongodb.MgoTransferResult{
				Key:       transferID,
				Status:    mongodb.PayloadDecodeFailed,
				InitTime:  common.Now(),
				Timestamp: common.Now(),
				Memo:      err.Error(),
			}
			if payload != nil {
				result.Status = mongodb.TxMintFailed
				result.Sender = payload.Sender
				result.Receiver = payload.Receiver
				result.SrcChainID = payload.SrcChainID
				result.DestChainID = payload.DestChainID
				result.Value = payload.Amount.String()
				result.PersonalRate = payload.PersonalRate.String()
			}
			if addErr := mongodb.AddTransferResult(result); addErr == mongodb.ErrItemIsDup {
				// redelivered payload, refresh the existing result
				_ = mongodb.UpdateTransferResultStatus(transferID, result.Status, common.Now(), result.Memo)
			}
		}
		return "", newRPCInternalError(err)
	}
	if mongodb.HasClient() {
		addErr := mongodb.AddTransferResult(&mongodb.MgoTransferResult{
			Key:          transferID,
			Sender:       payload.Sender,
			Receiver:     payload.Receiver,
			SrcChainID:   payload.SrcChainID,
			DestChainID:  payload.DestChainID,
			Value:        payload.Amount.String(),
			PersonalRate: payload.PersonalRate.String(),
			Status:       mongodb.TxFulfilled,
			InitTime:     payload.Timestamp,
			Timestamp:    common.Now(),
		})
		if addErr == mongodb.ErrItemIsDup {
			// earlier attempt failed the mint, flip the result to fulfilled
			_ = mongodb.UpdateTransferResultStatus(transferID, mongodb.TxFulfilled, common.Now(), "")
		}
	}
	return SuccessPostResult, nil
}

// GetCrossTransfer api
func GetCrossTransfer(transferID string) (*TransferInfo, error) {
	if !mongodb.HasClient() {
		return nil, errNoMongodb
	}
	mt, err := mongodb.FindCrossTransfer(transferID)
	if err != nil {
		return nil, err
	}
	return convertCrossTransfer(mt), nil
}

// GetTransferResult api
func GetTransferResult(transferID string) (*TransferResultInfo, error) {
	if !mongodb.HasClient() {
		return nil, errNoMongodb
	}
	mr, err := mongodb.FindTransferResult(transferID)
	if err != nil {
		return nil, err
	}
	return convertTransferResult(mr), nil
}

// GetTransferHistory api
func GetTransferHistory(sender string, offset, limit int64) ([]*TransferInfo, error) {
	if !mongodb.HasClient() {
		return nil, errNoMongodb
	}
	mts, err := mongodb.FindCrossTransferHistory(sender, offset, limit)
	if err != nil {
		return nil, err
	}
	return convertCrossTransfers(mts), nil
}

// GetVaultHistory api
func GetVaultHistory(account string, offset, limit int64) ([]*VaultRecordInfo, error) {
	if !mongodb.HasClient() {
		return nil, errNoMongodb
	}
	records, err := mongodb.FindVaultRecords(account, offset, limit)
	if err != nil {
		return nil, err
	}
	return convertVaultRecords(records), nil
}

// GetRateChangeHistory api
func GetRateChangeHistory(limit int64) ([]*RateChangeInfo, error) {
	if !mongodb.HasClient() {
		return nil, errNoMongodb
	}
	records, err := mongodb.FindRateChanges(limit)
	if err != nil {
		return nil, err
	}
	return convertRateChanges(records), nil
}

// --------------- admin --------------------------------

func parseCapability(name string) (ledger.Capability, error) {
	switch strings.ToLower(name) {
	case "ratesetter":
		return ledger.CapRateSetter, nil
	case "mintburn":
		return ledger.CapMintBurn, nil
	default:
		return 0, errUnknownCapability
	}
}

// GrantCapability admin api
func GrantCapability(args *AdminCapabilityArgs) (string, error) {
	if !params.IsAdmin(args.Caller) {
		return "", errNotAdmin
	}
	capability, err := parseCapability(args.Capability)
	if err != nil {
		return "", err
	}
	endpoint.Ledger().ACL().Grant(args.Principal, capability)
	log.Info("[api] grant capability", "principal", args.Principal, "capability", capability, "caller", args.Caller)
	return SuccessPostResult, nil
}

// RevokeCapability admin api
func RevokeCapability(args *AdminCapabilityArgs) (string, error) {
	if !params.IsAdmin(args.Caller) {
		return "", errNotAdmin
	}
	capability, err := parseCapability(args.Capability)
	if err != nil {
		return "", err
	}
	endpoint.Ledger().ACL().Revoke(args.Principal, capability)
	log.Info("[api] revoke capability", "principal", args.Principal, "capability", capability, "caller", args.Caller)
	return SuccessPostResult, nil
}

// SetGlobalRate admin api. The caller must hold the rate setter
// capability on the ledger, admin list membership alone is not enough.
func SetGlobalRate(args *AdminRateArgs) (string, error) {
	newRate, err := common.GetBigIntFromStr(args.NewRate)
	if err != nil {
		return "", newRPCInternalError(err)
	}
	l := endpoint.Ledger()
	oldRate := l.GetGlobalRate()
	if err := l.SetGlobalRate(args.Caller, newRate); err != nil {
		return "", newRPCInternalError(err)
	}
	if mongodb.HasClient() {
		_ = mongodb.AddRateChange(oldRate.String(), newRate.String(), args.Caller, common.Now())
	}
	return SuccessPostResult, nil
}
