package deposit

import (
	"fmt"
	"strings"

	blst "github.com/supranational/blst/bindings/go"
)

// DomainDeposit is the signature domain type of deposits
var DomainDeposit = [4]byte{0x03, 0x00, 0x00, 0x00}

// blsDST is the domain separation tag of the eth2 proof of possession scheme
var blsDST = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_")

// genesisForkVersions maps the known networks to their genesis fork version
var genesisForkVersions = map[string][4]byte{
	"mainnet": {0x00, 0x00, 0x00, 0x00},
	"sepolia": {0x90, 0x00, 0x00, 0x69},
	"holesky": {0x01, 0x01, 0x70, 0x00},
	"hoodi":   {0x10, 0x00, 0x09, 0x10},
}

// GenesisForkVersion returns the genesis fork version of a named network
func GenesisForkVersion(network string) ([4]byte, error) {
	version, ok := genesisForkVersions[strings.ToLower(network)]
	if !ok {
		return [4]byte{}, fmt.Errorf("network '%s' not found", network)
	}
	return version, nil
}

// ComputeDomain returns the signature domain for the given fork
func ComputeDomain(domainType [4]byte, forkVersion [4]byte, genesisValidatorsRoot [32]byte) ([32]byte, error) {
	forkData := &ForkData{
		CurrentVersion:        forkVersion[:],
		GenesisValidatorsRoot: genesisValidatorsRoot[:],
	}
	forkDataRoot, err := forkData.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}

	var domain [32]byte
	copy(domain[:4], domainType[:])
	copy(domain[4:], forkDataRoot[:28])
	return domain, nil
}

// SigningRoot returns the root signed by the validator key for a deposit message
func SigningRoot(msg *DepositMessage, domain [32]byte) ([32]byte, error) {
	objectRoot, err := msg.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	signingData := &SigningData{
		ObjectRoot: objectRoot[:],
		Domain:     domain[:],
	}
	return signingData.HashTreeRoot()
}

// VerifySignature checks the bls signature of the deposit. Deposits are
// valid across forks so the domain always uses an empty genesis validators root.
func VerifySignature(d *DepositData, forkVersion [4]byte) error {
	if err := checkDepositSizes(d.Pubkey, d.WithdrawalCredentials, d.Signature); err != nil {
		return err
	}

	domain, err := ComputeDomain(DomainDeposit, forkVersion, [32]byte{})
	if err != nil {
		return fmt.Errorf("could not get domain: %w", err)
	}
	root, err := SigningRoot(d.Message(), domain)
	if err != nil {
		return fmt.Errorf("could not get signing root: %w", err)
	}

	pub := new(blst.P1Affine).Uncompress(d.Pubkey)
	if pub == nil {
		return &SignatureError{Reason: "pubkey is not a valid bls point"}
	}
	sig := new(blst.P2Affine).Uncompress(d.Signature)
	if sig == nil {
		return &SignatureError{Reason: "signature is not a valid bls point"}
	}
	if !sig.Verify(true, pub, true, root[:], blsDST) {
		return &SignatureError{Reason: "verification failed"}
	}
	return nil
}
