// Package server starts the http api server.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth/v6/limiter"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/rpc/v2"
	rpcjson "github.com/gorilla/rpc/v2/json2"

	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"github.com/rebasefi/CrossChain-RebaseToken/params"
	"github.com/rebasefi/CrossChain-RebaseToken/rpc/restapi"
	"github.com/rebasefi/CrossChain-RebaseToken/rpc/rpcapi"
)

// StartAPIServer start api server
func StartAPIServer() {
	router := initRouter()

	apiPort := params.GetAPIPort()
	apiServer := params.GetConfig().APIServer
	allowedOrigins := apiServer.AllowedOrigins

	corsOptions := []handlers.CORSOption{
		handlers.AllowedMethods([]string{"GET", "POST"}),
	}
	if len(allowedOrigins) != 0 {
		corsOptions = append(corsOptions,
			handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type"}),
			handlers.AllowedOrigins(allowedOrigins),
		)
	}

	handler := handlers.CORS(corsOptions...)(router)
	if apiServer.MaxRequestsLimit > 0 {
		lmt := tollbooth.NewLimiter(float64(apiServer.MaxRequestsLimit), &limiter.ExpirableOptions{
			DefaultExpirationTTL: 600 * time.Second,
		})
		handler = tollbooth.LimitHandler(lmt, handler)
	}

	log.Info("JSON RPC service listen and serving", "port", apiPort, "allowedOrigins", allowedOrigins, "maxRequestsLimit", apiServer.MaxRequestsLimit)
	svr := http.Server{
		Addr:         fmt.Sprintf(":%v", apiPort),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		Handler:      handler,
	}
	go func() {
		if err := svr.ListenAndServe(); err != nil {
			log.Error("ListenAndServe error", "err", err)
		}
	}()
}

func initRouter() *mux.Router {
	r := mux.NewRouter()

	rpcserver := rpc.NewServer()
	rpcserver.RegisterCodec(rpcjson.NewCodec(), "application/json")
	_ = rpcserver.RegisterService(new(rpcapi.RPCAPI), "rbt")

	r.Handle("/rpc", rpcserver)
	r.HandleFunc("/serverinfo", restapi.ServerInfoHandler).Methods("GET")
	r.HandleFunc("/versioninfo", restapi.VersionInfoHandler).Methods("GET")
	r.HandleFunc("/balance/{account}", restapi.GetBalanceHandler).Methods("GET")
	r.HandleFunc("/globalrate", restapi.GetGlobalRateHandler).Methods("GET")
	r.HandleFunc("/rate/history", restapi.RateChangeHistoryHandler).Methods("GET")
	r.HandleFunc("/rate/{account}", restapi.GetPersonalRateHandler).Methods("GET")
	r.HandleFunc("/transfer/result/{transferid}", restapi.GetTransferResultHandler).Methods("GET")
	r.HandleFunc("/transfer/history/{account}", restapi.TransferHistoryHandler).Methods("GET")
	r.HandleFunc("/transfer/{transferid}", restapi.GetCrossTransferHandler).Methods("GET")
	r.HandleFunc("/vault/history/{account}", restapi.VaultHistoryHandler).Methods("GET")

	r.HandleFunc("/transfer", restapi.TransferHandler).Methods("POST")
	r.HandleFunc("/vault/deposit", restapi.DepositHandler).Methods("POST")
	r.HandleFunc("/vault/redeem", restapi.RedeemHandler).Methods("POST")
	r.HandleFunc("/bridge/send", restapi.SendCrossChainHandler).Methods("POST")
	r.HandleFunc("/bridge/deliver", restapi.DeliverPayloadHandler).Methods("POST")
	r.HandleFunc("/admin/grant", restapi.GrantCapabilityHandler).Methods("POST")
	r.HandleFunc("/admin/revoke", restapi.RevokeCapabilityHandler).Methods("POST")
	r.HandleFunc("/admin/setrate", restapi.SetGlobalRateHandler).Methods("POST")

	return r
}
