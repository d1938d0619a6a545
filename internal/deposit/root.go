package deposit

// ComputeRoot returns the deposit data root of d. Field sizes are checked
// before anything is hashed.
func ComputeRoot(d *DepositData) ([32]byte, error) {
	if err := checkDepositSizes(d.Pubkey, d.WithdrawalCredentials, d.Signature); err != nil {
		return [32]byte{}, err
	}
	return d.HashTreeRoot()
}

// ComputeMessageRoot returns the deposit message root of d
func ComputeMessageRoot(d *DepositData) ([32]byte, error) {
	if err := checkDepositSizes(d.Pubkey, d.WithdrawalCredentials, d.Signature); err != nil {
		return [32]byte{}, err
	}
	return d.Message().HashTreeRoot()
}

func checkDepositSizes(pubkey, wc, sig []byte) error {
	if err := checkSize("pubkey", pubkey, PubkeyLength); err != nil {
		return err
	}
	if err := checkSize("withdrawal_credentials", wc, WithdrawalCredentialsLength); err != nil {
		return err
	}
	if err := checkSize("signature", sig, SignatureLength); err != nil {
		return err
	}
	return nil
}
