// Package rpcapi provides the json rpc service, registered under
// the 'rbt' namespace.
package rpcapi

import (
	"net/http"

	"github.com/rebasefi/CrossChain-RebaseToken/internal/ledgerapi"
	"github.com/rebasefi/CrossChain-RebaseToken/params"
)

// RPCAPI rpc api handler
type RPCAPI struct{}

// RPCNullArgs null args
type RPCNullArgs struct{}

// GetVersionInfo api
func (s *RPCAPI) GetVersionInfo(r *http.Request, args *RPCNullArgs, result *string) error {
	version := params.VersionWithMeta
	*result = version
	return nil
}

// GetServerInfo api
func (s *RPCAPI) GetServerInfo(r *http.Request, args *RPCNullArgs, result *ledgerapi.ServerInfo) error {
	res, err := ledgerapi.GetServerInfo()
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// GetBalanceInfo api
func (s *RPCAPI) GetBalanceInfo(r *http.Request, account *string, result *ledgerapi.BalanceInfo) error {
	res, err := ledgerapi.GetBalanceInfo(*account)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// GetGlobalRate api
func (s *RPCAPI) GetGlobalRate(r *http.Request, args *RPCNullArgs, result *string) error {
	res, err := ledgerapi.GetGlobalRate()
	if err == nil {
		*result = res
	}
	return err
}

// GetPersonalRate api
func (s *RPCAPI) GetPersonalRate(r *http.Request, account *string, result *string) error {
	res, err := ledgerapi.GetPersonalRate(*account)
	if err == nil {
		*result = res
	}
	return err
}

// Transfer api
func (s *RPCAPI) Transfer(r *http.Request, args *ledgerapi.TransferArgs, result *string) error {
	res, err := ledgerapi.Transfer(args)
	if err == nil {
		*result = res
	}
	return err
}

// Deposit api
func (s *RPCAPI) Deposit(r *http.Request, args *ledgerapi.VaultArgs, result *string) error {
	res, err := ledgerapi.Deposit(args)
	if err == nil {
		*result = res
	}
	return err
}

// Redeem api
func (s *RPCAPI) Redeem(r *http.Request, args *ledgerapi.VaultArgs, result *ledgerapi.RedeemResult) error {
	res, err := ledgerapi.Redeem(args)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// SendCrossChain api
func (s *RPCAPI) SendCrossChain(r *http.Request, args *ledgerapi.CrossChainArgs, result *ledgerapi.CrossChainResult) error {
	res, err := ledgerapi.SendCrossChain(args)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// DeliverPayload api
func (s *RPCAPI) DeliverPayload(r *http.Request, payloadHex *string, result *string) error {
	res, err := ledgerapi.DeliverPayload(*payloadHex)
	if err == nil {
		*result = res
	}
	return err
}

// GetCrossTransfer api
func (s *RPCAPI) GetCrossTransfer(r *http.Request, transferID *string, result *ledgerapi.TransferInfo) error {
	res, err := ledgerapi.GetCrossTransfer(*transferID)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// GetTransferResult api
func (s *RPCAPI) GetTransferResult(r *http.Request, transferID *string, result *ledgerapi.TransferResultInfo) error {
	res, err := ledgerapi.GetTransferResult(*transferID)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// RPCQueryHistoryArgs history query args
type RPCQueryHistoryArgs struct {
	Account string `json:"account"`
	Offset  int64  `json:"offset"`
	Limit   int64  `json:"limit"`
}

// GetTransferHistory api
func (s *RPCAPI) GetTransferHistory(r *http.Request, args *RPCQueryHistoryArgs, result *[]*ledgerapi.TransferInfo) error {
	res, err := ledgerapi.GetTransferHistory(args.Account, args.Offset, args.Limit)
	if err == nil {
		*result = res
	}
	return err
}

// GetVaultHistory api
func (s *RPCAPI) GetVaultHistory(r *http.Request, args *RPCQueryHistoryArgs, result *[]*ledgerapi.VaultRecordInfo) error {
	res, err := ledgerapi.GetVaultHistory(args.Account, args.Offset, args.Limit)
	if err == nil {
		*result = res
	}
	return err
}

// GetRateChangeHistory api
func (s *RPCAPI) GetRateChangeHistory(r *http.Request, args *RPCQueryHistoryArgs, result *[]*ledgerapi.RateChangeInfo) error {
	res, err := ledgerapi.GetRateChangeHistory(args.Limit)
	if err == nil {
		*result = res
	}
	return err
}
