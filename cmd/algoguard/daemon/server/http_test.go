package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/algoguard/algoguard/cmd/algoguard/daemon/wire"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/gofiber/fiber/v3"
)

func TestHTTPValidate(t *testing.T) {
	s, _, teardown := prepareServerForTest(t, "TestHTTPValidate", nil)
	defer teardown()
	app := s.newHTTPApp()

	body := `{"sender":"` + senderAddress + `","assetId":0,"amount":"0.5"}`
	request := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(body))
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	response, err := app.Test(request)
	if err != nil {
		t.Fatalf("TestHTTPValidate: Test unexpectedly failed: %s", err)
	}
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("TestHTTPValidate: expected status %d, got %d", fiber.StatusOK, response.StatusCode)
	}

	validateResponse := &wire.ValidateResponse{}
	err = json.NewDecoder(response.Body).Decode(validateResponse)
	if err != nil {
		t.Fatalf("TestHTTPValidate: Decode unexpectedly failed: %s", err)
	}
	if validateResponse.Outcome != model.OutcomeOK.String() || validateResponse.Amount != 500_000 {
		t.Fatalf("TestHTTPValidate: expected OK(500000), got %s(%d)",
			validateResponse.Outcome, validateResponse.Amount)
	}
}

func TestHTTPErrors(t *testing.T) {
	s, _, teardown := prepareServerForTest(t, "TestHTTPErrors", nil)
	defer teardown()
	app := s.newHTTPApp()

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		expectedStatus int
	}{
		{"malformed request", http.MethodPost, "/v1/validate", `{"sender":"nope","amount":"1"}`,
			fiber.StatusUnprocessableEntity},
		{"invalid json", http.MethodPost, "/v1/validate", `{`, fiber.StatusBadRequest},
		{"non-numeric asset id", http.MethodGet, "/v1/accounts/" + senderAddress + "/max-sendable/abc", "",
			fiber.StatusBadRequest},
		{"sync without algod", http.MethodPost, "/v1/sync", "", fiber.StatusPreconditionFailed},
	}

	for _, test := range tests {
		var body io.Reader
		if test.body != "" {
			body = strings.NewReader(test.body)
		}
		request := httptest.NewRequest(test.method, test.target, body)
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

		response, err := app.Test(request)
		if err != nil {
			t.Fatalf("TestHTTPErrors: %s: Test unexpectedly failed: %s", test.name, err)
		}
		if response.StatusCode != test.expectedStatus {
			t.Fatalf("TestHTTPErrors: %s: expected status %d, got %d",
				test.name, test.expectedStatus, response.StatusCode)
		}
	}
}

func TestHTTPMaxSendable(t *testing.T) {
	s, _, teardown := prepareServerForTest(t, "TestHTTPMaxSendable", nil)
	defer teardown()
	app := s.newHTTPApp()

	request := httptest.NewRequest(http.MethodGet, "/v1/accounts/"+senderAddress+"/max-sendable/31566704", nil)
	response, err := app.Test(request)
	if err != nil {
		t.Fatalf("TestHTTPMaxSendable: Test unexpectedly failed: %s", err)
	}
	maxSendableResponse := &wire.MaxSendableResponse{}
	err = json.NewDecoder(response.Body).Decode(maxSendableResponse)
	if err != nil {
		t.Fatalf("TestHTTPMaxSendable: Decode unexpectedly failed: %s", err)
	}
	if !maxSendableResponse.Known || maxSendableResponse.Amount != 2_500_000 {
		t.Fatalf("TestHTTPMaxSendable: expected 2500000 to be sendable, got %+v", maxSendableResponse)
	}
}
