package main

import (
	"context"
	"fmt"

	"github.com/algoguard/algoguard/cmd/algoguard/daemon/client"
	"github.com/algoguard/algoguard/cmd/algoguard/daemon/wire"
	"github.com/algoguard/algoguard/domain/validation/amountvalidator"
	"github.com/algoguard/algoguard/domain/validation/model"
)

const closeOutNotice = "Close-out:\tthis empties the account, send it as a close-out with the fee taken from the amount"

func validate(conf *validateConfig) error {
	request := model.TransferRequest{
		Sender:   conf.Sender,
		Receiver: conf.Receiver,
		AssetID:  model.AssetID(conf.AssetID),
		Amount:   conf.Amount,
	}

	if conf.DaemonAddress != "" {
		return validateThroughDaemon(conf.DaemonAddress, &request)
	}

	verdict, err := validateLocally(conf, &request)
	if err != nil {
		return err
	}

	fmt.Printf("Outcome:\t%s\n", verdict.Outcome)
	fmt.Printf("Checks:\t\t%s\n", verdict.Result)
	if verdict.IsAccountCloseOut {
		fmt.Println(closeOutNotice)
	}
	if outcomeErr := verdict.Outcome.Err(); outcomeErr != nil {
		fmt.Printf("Reason:\t\t%s\n", outcomeErr)
	}
	return nil
}

// validateLocally validates the request against the sender's snapshot in the local store.
func validateLocally(conf *validateConfig, request *model.TransferRequest) (*model.Verdict, error) {
	store, err := openStore(&conf.StoreFlags, conf.NetParams())
	if err != nil {
		return nil, err
	}
	defer store.Close()

	set, err := store.LoadSet(context.Background(), request.Sender)
	if err != nil {
		return nil, err
	}
	return amountvalidator.New(conf.NetParams(), set, set).ValidateTransfer(request)
}

func validateThroughDaemon(daemonAddress string, request *model.TransferRequest) error {
	daemonClient, tearDown, err := client.Connect(daemonAddress)
	if err != nil {
		return err
	}
	defer tearDown()

	ctx, cancel := context.WithTimeout(context.Background(), daemonTimeout)
	defer cancel()
	response, err := daemonClient.Validate(ctx, &wire.ValidateRequest{Transfer: *request})
	if err != nil {
		return err
	}

	fmt.Printf("Outcome:\t%s\n", response.Outcome)
	if response.FormattedAmount != "" {
		fmt.Printf("Amount:\t\t%s\n", response.FormattedAmount)
	}
	fmt.Printf("Checks:\t\t%s\n", response.Result)
	if response.AccountCloseOut {
		fmt.Println(closeOutNotice)
	}
	if response.Error != "" {
		fmt.Printf("Reason:\t\t%s\n", response.Error)
	}
	return nil
}
