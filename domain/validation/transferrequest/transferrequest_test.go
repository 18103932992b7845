package transferrequest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/domain/validation/ruleerrors"
	"github.com/go-playground/validator/v10"
)

func testAddress(seed byte) string {
	var publicKey [32]byte
	for i := range publicKey {
		publicKey[i] = seed + byte(i)
	}
	return EncodeAddress(publicKey)
}

func TestEncodeAddress(t *testing.T) {
	zeroAddress := EncodeAddress([32]byte{})
	expected := "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAY5HFKQ"
	if zeroAddress != expected {
		t.Fatalf("EncodeAddress: expected %s, got %s", expected, zeroAddress)
	}
	if !IsValidAddress(zeroAddress) {
		t.Fatalf("IsValidAddress: %s should be valid", zeroAddress)
	}
}

func TestIsValidAddress(t *testing.T) {
	valid := testAddress(7)
	corrupted := []byte(valid)
	if corrupted[0] == 'A' {
		corrupted[0] = 'B'
	} else {
		corrupted[0] = 'A'
	}

	tests := []struct {
		address  string
		expected bool
	}{
		{valid, true},
		{string(corrupted), false},
		{valid[:57], false},
		{valid + "A", false},
		{"", false},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaay5hfkq", false},
	}
	for _, test := range tests {
		if IsValidAddress(test.address) != test.expected {
			t.Fatalf("IsValidAddress(%q): expected %t", test.address, test.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	sender := testAddress(1)
	receiver := testAddress(2)

	tests := []struct {
		name           string
		request        *model.TransferRequest
		expectedFields []string
	}{
		{"valid", &model.TransferRequest{Sender: sender, Amount: "1.5", Receiver: receiver}, nil},
		{"valid without receiver", &model.TransferRequest{Sender: sender, Amount: "0", AssetID: 31566704}, nil},
		{"negative amount is left to conversion", &model.TransferRequest{Sender: sender, Amount: "-1"}, nil},
		{"missing sender", &model.TransferRequest{Amount: "1"}, []string{"Sender"}},
		{"bad receiver", &model.TransferRequest{Sender: sender, Amount: "1", Receiver: "nope"}, []string{"Receiver"}},
		{"bad everything", &model.TransferRequest{Sender: "x", Amount: "1e3", Receiver: "y"},
			[]string{"Sender", "Amount", "Receiver"}},
	}
	for _, test := range tests {
		err := Validate(test.request)
		if test.expectedFields == nil {
			if err != nil {
				t.Fatalf("Validate: %s: unexpected error: %s", test.name, err)
			}
			continue
		}
		invalid := &ruleerrors.ErrInvalidTransferRequest{}
		if !errors.As(err, invalid) {
			t.Fatalf("Validate: %s: expected ErrInvalidTransferRequest, got %v", test.name, err)
		}
		if !reflect.DeepEqual(invalid.InvalidFields, test.expectedFields) {
			t.Fatalf("Validate: %s: expected invalid fields %v, got %v", test.name, test.expectedFields, invalid.InvalidFields)
		}
	}
}

func TestRegisterValidations(t *testing.T) {
	validate := validator.New()
	err := registerValidations(validate, customValidations)
	if err != nil {
		t.Fatalf("TestRegisterValidations: registering the custom validations failed: %s", err)
	}

	err = registerValidations(validator.New(), map[string]validator.Func{
		"": func(validator.FieldLevel) bool { return true },
	})
	if err == nil {
		t.Fatalf("TestRegisterValidations: expected an error for an empty tag")
	}
}
