package rpcapi

import (
	"net/http"

	"github.com/rebasefi/CrossChain-RebaseToken/internal/ledgerapi"
)

// GrantCapability admin api
func (s *RPCAPI) GrantCapability(r *http.Request, args *ledgerapi.AdminCapabilityArgs, result *string) error {
	res, err := ledgerapi.GrantCapability(args)
	if err == nil {
		*result = res
	}
	return err
}

// RevokeCapability admin api
func (s *RPCAPI) RevokeCapability(r *http.Request, args *ledgerapi.AdminCapabilityArgs, result *string) error {
	res, err := ledgerapi.RevokeCapability(args)
	if err == nil {
		*result = res
	}
	return err
}

// SetGlobalRate admin api
func (s *RPCAPI) SetGlobalRate(r *http.Request, args *ledgerapi.AdminRateArgs, result *string) error {
	res, err := ledgerapi.SetGlobalRate(args)
	if err == nil {
		*result = res
	}
	return err
}
