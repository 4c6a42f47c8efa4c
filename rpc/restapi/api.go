// Package restapi provides the restful api handlers.
package restapi

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rebasefi/CrossChain-RebaseToken/internal/ledgerapi"
)

func writeResponse(w http.ResponseWriter, resp interface{}, err error) {
	if err == nil {
		jsonData, _ := json.Marshal(resp)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(jsonData)
	} else {
		fmt.Fprintln(w, err.Error())
	}
}

// ServerInfoHandler handler
func ServerInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	res, err := ledgerapi.GetServerInfo()
	writeResponse(w, res, err)
}

// VersionInfoHandler handler
func VersionInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	res, err := ledgerapi.GetVersionInfo()
	writeResponse(w, res, err)
}

// GetBalanceHandler handler
func GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res, err := ledgerapi.GetBalanceInfo(vars["account"])
	writeResponse(w, res, err)
}

// GetGlobalRateHandler handler
func GetGlobalRateHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	res, err := ledgerapi.GetGlobalRate()
	writeResponse(w, res, err)
}

// GetPersonalRateHandler handler
func GetPersonalRateHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res, err := ledgerapi.GetPersonalRate(vars["account"])
	writeResponse(w, res, err)
}

// GetCrossTransferHandler handler
func GetCrossTransferHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res, err := ledgerapi.GetCrossTransfer(vars["transferid"])
	writeResponse(w, res, err)
}

// GetTransferResultHandler handler
func GetTransferResultHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res, err := ledgerapi.GetTransferResult(vars["transferid"])
	writeResponse(w, res, err)
}

func getHistoryParams(r *http.Request) (offset, limit int64, err error) {
	vals := r.URL.Query()

	offset = 0
	limit = 20

	offsetVal, exist := vals["offset"]
	if exist {
		bi, ok := new(big.Int).SetString(offsetVal[0], 0)
		if !ok || !bi.IsInt64() {
			return offset, limit, fmt.Errorf("wrong offset")
		}
		offset = bi.Int64()
	}

	limitVal, exist := vals["limit"]
	if exist {
		bi, ok := new(big.Int).SetString(limitVal[0], 0)
		if !ok || !bi.IsInt64() {
			return offset, limit, fmt.Errorf("wrong limit")
		}
		limit = bi.Int64()
	}

	return offset, limit, nil
}

// TransferHistoryHandler handler
func TransferHistoryHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	offset, limit, err := getHistoryParams(r)
	if err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := ledgerapi.GetTransferHistory(vars["account"], offset, limit)
	writeResponse(w, res, err)
}

// VaultHistoryHandler handler
func VaultHistoryHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	offset, limit, err := getHistoryParams(r)
	if err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := ledgerapi.GetVaultHistory(vars["account"], offset, limit)
	writeResponse(w, res, err)
}

// RateChangeHistoryHandler handler
func RateChangeHistoryHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, limit, err := getHistoryParams(r)
	if err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := ledgerapi.GetRateChangeHistory(limit)
	writeResponse(w, res, err)
}

func decodeJSONBody(r *http.Request, args interface{}) error {
	defer func() {
		_ = r.Body.Close()
	}()
	return json.NewDecoder(r.Body).Decode(args)
}

// TransferHandler handler
func TransferHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	var args ledgerapi.TransferArgs
	if err := decodeJSONBody(r, &args); err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := ledgerapi.Transfer(&args)
	writeResponse(w, res, err)
}

// DepositHandler handler
func DepositHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	var args ledgerapi.VaultArgs
	if err := decodeJSONBody(r, &args); err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := ledgerapi.Deposit(&args)
	writeResponse(w, res, err)
}

// RedeemHandler handler
func RedeemHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	var args ledgerapi.VaultArgs
	if err := decodeJSONBody(r, &args); err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := ledgerapi.Redeem(&args)
	writeResponse(w, res, err)
}

// SendCrossChainHandler handler
func SendCrossChainHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	var args ledgerapi.CrossChainArgs
	if err := decodeJSONBody(r, &args); err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := ledgerapi.SendCrossChain(&args)
	writeResponse(w, res, err)
}

// DeliverPayloadHandler handler
func DeliverPayloadHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	var args struct {
		Payload string `json:"payload"`
	}
	if err := decodeJSONBody(r, &args); err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := ledgerapi.DeliverPayload(args.Payload)
	writeResponse(w, res, err)
}

// GrantCapabilityHandler admin handler
func GrantCapabilityHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	var args ledgerapi.AdminCapabilityArgs
	if err := decodeJSONBody(r, &args); err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := ledgerapi.GrantCapability(&args)
	writeResponse(w, res, err)
}

// RevokeCapabilityHandler admin handler
func RevokeCapabilityHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	var args ledgerapi.AdminCapabilityArgs
	if err := decodeJSONBody(r, &args); err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := ledgerapi.RevokeCapability(&args)
	writeResponse(w, res, err)
}

// SetGlobalRateHandler admin handler
func SetGlobalRateHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	var args ledgerapi.AdminRateArgs
	if err := decodeJSONBody(r, &args); err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := ledgerapi.SetGlobalRate(&args)
	writeResponse(w, res, err)
}
