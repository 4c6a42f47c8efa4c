package worker

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/rebasefi/CrossChain-RebaseToken/cmd/utils"
	"github.com/rebasefi/CrossChain-RebaseToken/endpoint"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"github.com/rebasefi/CrossChain-RebaseToken/params"
)

// WatchPeersDynamically add peer chains dynamically by watching
// the peers directory for new peer config files.
func WatchPeersDynamically() {
	peersDir := params.GetPeersDir()
	if peersDir == "" {
		log.Warn("peers dir is empty")
		return
	}

	watch, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("fsnotify.NewWatcher failed", "err", err)
		return
	}

	err = watch.Add(peersDir)
	if err != nil {
		log.Error("watch.Add peers dir failed", "err", err)
		return
	}

	utils.TopWaitGroup.Add(1)
	go startPeersWatcher(watch)
}

func startPeersWatcher(watch *fsnotify.Watcher) {
	log.Info("start fsnotify watch of peers dir")
	defer func() {
		log.Info("stop fsnotify watch of peers dir")
		_ = watch.Close()
		utils.TopWaitGroup.Done()
	}()

	ops := []fsnotify.Op{
		fsnotify.Create,
		fsnotify.Write,
	}

	for {
		select {
		case <-utils.CleanupChan:
			return
		case ev, ok := <-watch.Events:
			if !ok {
				continue
			}
			log.Trace("fsnotify watch event", "event", ev)
			for _, op := range ops {
				if ev.Op&op == op {
					err := addPeerChain(ev.Name)
					if err != nil {
						log.Info("addPeerChain error", "configFile", ev.Name, "err", err)
					}
					break
				}
			}
		case werr, ok := <-watch.Errors:
			if !ok {
				continue
			}
			log.Warn("fsnotify watch error", "err", werr)
		}
	}
}

func addPeerChain(fileName string) error {
	if !strings.HasSuffix(fileName, ".toml") {
		return nil
	}
	fileStat, _ := os.Stat(fileName)
	// ignore if file is not exist, or is directory, or is empty file
	if fileStat == nil || fileStat.IsDir() || fileStat.Size() == 0 {
		return nil
	}
	peer := &params.PeerChainConfig{}
	if _, err := toml.DecodeFile(fileName, peer); err != nil {
		return err
	}
	if err := peer.CheckConfig(); err != nil {
		return err
	}
	endpoint.AddPeer(peer.ChainID, peer.APIAddress)
	log.Info("addPeerChain success", "configFile", fileName, "chainID", peer.ChainID, "apiAddress", peer.APIAddress)
	return nil
}
