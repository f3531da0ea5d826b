package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"veriflow/internal/config"
	"veriflow/internal/crypto"
	"veriflow/internal/files"
	"veriflow/internal/models"
	"veriflow/internal/qr"
	"veriflow/internal/registry"
)

// veriqr issues and verifies tokens against the local record store, no
// server round-trip. Shares the secret and data dir resolution with the
// server, so tokens issued here verify there and vice versa.

func main() {
	cmd := flag.String("cmd", "issue", "Command: issue|verify|history")
	company := flag.String("company", "", "Company id (issue/history)")
	number := flag.String("number", "", "Vehicle number (issue)")
	model := flag.String("model", "", "Vehicle model (issue)")
	vtype := flag.String("type", "", "Vehicle type (issue)")
	name := flag.String("name", "", "Driver name (issue)")
	phone := flag.String("phone", "", "Driver phone (issue)")
	license := flag.String("license", "", "Driver license id (issue)")
	validTill := flag.String("valid-till", "", "Optional expiry date, YYYY-MM-DD (issue)")
	purpose := flag.String("purpose", "", "Optional purpose (issue)")
	token := flag.String("token", "", "Encoded token (verify)")
	flag.Parse()

	cfg := config.Load()
	secret := config.ReadSecret()
	signer := crypto.NewSigner(secret)
	dir := registry.Default()

	var kv files.KV
	if cfg.EncryptRecords {
		kv = files.NewEncryptedFileKV(cfg.DataDir, crypto.DeriveStoreKey(secret))
	} else {
		kv = files.NewFileKV(cfg.DataDir)
	}
	store := files.NewRecordStore(kv)

	switch *cmd {
	case "issue":
		if *company == "" || *number == "" || *name == "" {
			fmt.Println("--company, --number and --name are required")
			os.Exit(1)
		}
		issuer := qr.NewIssuer(signer, dir, store)
		vehicle := models.VehicleData{VehicleNumber: *number, VehicleModel: *model, VehicleType: *vtype}
		driver := models.DriverData{DriverName: *name, PhoneNumber: *phone, LicenseID: *license}
		rec, err := issuer.Issue(*company, vehicle, driver, *validTill, *purpose)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println("Record ID:", rec.ID)
		fmt.Println("Token:", rec.EncodedData)
	case "verify":
		if *token == "" {
			fmt.Println("--token required")
			os.Exit(1)
		}
		result := qr.NewVerifier(signer, dir).Verify(*token)
		printJSON(result)
	case "history":
		if *company == "" {
			fmt.Println("--company required")
			os.Exit(1)
		}
		printJSON(store.ListByCompany(*company))
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
