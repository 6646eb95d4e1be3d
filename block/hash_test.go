package block

import (
	"testing"

	"github.com/nanoshift/nanogo/types"
)

func TestHashStateBlockVector(t *testing.T) {
	account, err := types.PublicKeyFromHex("0D790F9117A5AAA4C2716E36B87409811D5E721AD721EC94000B4D1A069254D4")
	if err != nil {
		t.Fatalf("account hex: %v", err)
	}
	previous, err := types.BlockHashFromHex("64CE2D565D7EF418C96612E7838884CFB279CC1C330D540B0CA0C7DA4CD631EF")
	if err != nil {
		t.Fatalf("previous hex: %v", err)
	}
	representative, err := types.PublicKeyFromHex("437F01A8270B8DB1DCD2D81935E5E77785E74F76C6E441D1721B7EC2E94851CB")
	if err != nil {
		t.Fatalf("representative hex: %v", err)
	}
	link, err := types.LinkFromHex("3133E2BA03B97E8F763C5472A3AB3B2DE4916BBFA86491B8EBD6FFCEBB4F990E")
	if err != nil {
		t.Fatalf("link hex: %v", err)
	}
	balance := types.RawFromUint64(3)

	want, err := types.BlockHashFromHex("03A4B8F009F5F368F75E601A1732A48118556AE952A84413A72B910A82D15F37")
	if err != nil {
		t.Fatalf("want hex: %v", err)
	}

	got := HashStateBlock(account, previous, representative, balance, link)
	if got != want {
		t.Errorf("HashStateBlock() = %s, want %s", got.Hex(), want.Hex())
	}
}

func TestHashStateBlockTamperDetection(t *testing.T) {
	account, _ := types.PublicKeyFromHex("0D790F9117A5AAA4C2716E36B87409811D5E721AD721EC94000B4D1A069254D4")
	previous, _ := types.BlockHashFromHex("64CE2D565D7EF418C96612E7838884CFB279CC1C330D540B0CA0C7DA4CD631EF")
	representative, _ := types.PublicKeyFromHex("437F01A8270B8DB1DCD2D81935E5E77785E74F76C6E441D1721B7EC2E94851CB")
	link, _ := types.LinkFromHex("3133E2BA03B97E8F763C5472A3AB3B2DE4916BBFA86491B8EBD6FFCEBB4F990E")

	h1 := HashStateBlock(account, previous, representative, types.RawFromUint64(3), link)
	h2 := HashStateBlock(account, previous, representative, types.RawFromUint64(4), link)
	if h1 == h2 {
		t.Error("changing balance did not change the hash")
	}
}
