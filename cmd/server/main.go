package main

import (
	"log"
	"net/http"

	"veriflow/internal/api"
	"veriflow/internal/config"
	"veriflow/internal/crypto"
	"veriflow/internal/files"
	"veriflow/internal/qr"
	"veriflow/internal/registry"
	"veriflow/internal/utils"
)

func main() {
	cfg := config.Load()
	secret := config.ReadSecret()

	var kv files.KV
	if cfg.EncryptRecords {
		kv = files.NewEncryptedFileKV(cfg.DataDir, crypto.DeriveStoreKey(secret))
	} else {
		kv = files.NewFileKV(cfg.DataDir)
	}
	store := files.NewRecordStore(kv)

	signer := crypto.NewSigner(secret)
	dir := registry.Default()

	logger, err := utils.NewLogger(cfg.LogFile)
	if err != nil {
		log.Printf("request logging disabled: %v", err)
	} else {
		go logger.RotateLog()
	}

	srv := &api.Server{
		Issuer:   qr.NewIssuer(signer, dir, store),
		Verifier: qr.NewVerifier(signer, dir),
		Registry: dir,
		Store:    store,
		BaseURL:  cfg.BaseURL,
		Log:      logger,
	}

	log.Println("veriflow server running on", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, srv.NewRouter()))
}
