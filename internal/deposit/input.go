package deposit

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
)

// RawRecord is one untrusted entry of a deposit data file. The checked
// optional fields are nil when the file does not carry them; an empty
// string is present and gets validated.
type RawRecord struct {
	Pubkey                string  `json:"pubkey"`
	WithdrawalCredentials string  `json:"withdrawal_credentials"`
	Amount                uint64  `json:"amount"`
	Signature             string  `json:"signature"`
	DepositDataRoot       *string `json:"deposit_data_root,omitempty"`

	// fields written by the staking deposit cli
	DepositMessageRoot *string `json:"deposit_message_root,omitempty"`
	ForkVersion        *string `json:"fork_version,omitempty"`
	NetworkName        string  `json:"network_name,omitempty"`
	DepositCLIVersion  string  `json:"deposit_cli_version,omitempty"`
}

var (
	requiredFields = []string{"pubkey", "withdrawal_credentials", "signature"}
	optionalFields = []string{"deposit_data_root", "deposit_message_root", "fork_version", "network_name", "deposit_cli_version"}
)

// ParseRecords checks that data is a json array of deposit records and
// returns them in file order
func ParseRecords(data []byte) ([]*RawRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var objs []map[string]json.RawMessage
	if err := dec.Decode(&objs); err != nil {
		return nil, &SchemaError{Index: -1, Reason: "expected a json array of objects: " + err.Error()}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &SchemaError{Index: -1, Reason: "unexpected data after the deposit array"}
	}
	if len(objs) == 0 {
		return nil, ErrEmptyBatch
	}

	records := make([]*RawRecord, len(objs))
	for i, obj := range objs {
		if obj == nil {
			return nil, &SchemaError{Index: i, Reason: "expected an object"}
		}
		record, err := parseRecord(i, obj)
		if err != nil {
			return nil, err
		}
		records[i] = record
	}
	return records, nil
}

func parseRecord(indx int, obj map[string]json.RawMessage) (*RawRecord, error) {
	str := map[string]string{}
	for _, field := range requiredFields {
		raw, ok := obj[field]
		if !ok {
			return nil, &SchemaError{Index: indx, Field: field, Reason: "is missing"}
		}
		val, err := parseString(raw)
		if err != nil {
			return nil, &SchemaError{Index: indx, Field: field, Reason: "must be a string"}
		}
		str[field] = val
	}
	for _, field := range optionalFields {
		raw, ok := obj[field]
		if !ok || string(raw) == "null" {
			continue
		}
		val, err := parseString(raw)
		if err != nil {
			return nil, &SchemaError{Index: indx, Field: field, Reason: "must be a string"}
		}
		str[field] = val
	}

	rawAmount, ok := obj["amount"]
	if !ok {
		return nil, &SchemaError{Index: indx, Field: "amount", Reason: "is missing"}
	}
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return nil, &SchemaError{Index: indx, Field: "amount", Reason: err.Error()}
	}

	record := &RawRecord{
		Pubkey:                str["pubkey"],
		WithdrawalCredentials: str["withdrawal_credentials"],
		Amount:                amount,
		Signature:             str["signature"],
		DepositDataRoot:       optional(str, "deposit_data_root"),
		DepositMessageRoot:    optional(str, "deposit_message_root"),
		ForkVersion:           optional(str, "fork_version"),
		NetworkName:           str["network_name"],
		DepositCLIVersion:     str["deposit_cli_version"],
	}
	return record, nil
}

func optional(str map[string]string, field string) *string {
	val, ok := str[field]
	if !ok {
		return nil
	}
	return &val
}

func parseString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

type amountSyntaxError string

func (a amountSyntaxError) Error() string {
	return string(a)
}

// parseAmount accepts both a json number and a decimal string
func parseAmount(raw json.RawMessage) (uint64, error) {
	var str string
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, amountSyntaxError("must be a number or a decimal string")
		}
	} else {
		var num json.Number
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&num); err != nil {
			return 0, amountSyntaxError("must be a number or a decimal string")
		}
		str = num.String()
	}
	amount, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, amountSyntaxError("must be an unsigned 64 bit integer, got '" + str + "'")
	}
	return amount, nil
}
