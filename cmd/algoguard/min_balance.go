package main

import (
	"context"
	"fmt"

	"github.com/algoguard/algoguard/domain/validation/minimumbalance"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/domain/validation/utils/amountconversion"
	"github.com/pkg/errors"
)

func minBalance(conf *minBalanceConfig) error {
	minimumBalance, account, err := minBalanceLocally(conf)
	if err != nil {
		return err
	}

	fmt.Printf("Minimum balance:\t%s\n", amountconversion.FormatAmountWithUnit(minimumBalance, model.AlgoDecimals, "ALGO"))
	if account.ReportedMinBalance != 0 {
		fmt.Printf("Reported by algod:\t%s\n",
			amountconversion.FormatAmountWithUnit(account.ReportedMinBalance, model.AlgoDecimals, "ALGO"))
	}
	return minimumbalance.NewCalculator(conf.NetParams()).CheckReported(account)
}

// minBalanceLocally computes the minimum balance of the account in the local store.
func minBalanceLocally(conf *minBalanceConfig) (uint64, *model.AccountSnapshot, error) {
	store, err := openStore(&conf.StoreFlags, conf.NetParams())
	if err != nil {
		return 0, nil, err
	}
	defer store.Close()

	set, err := store.LoadSet(context.Background(), conf.Address)
	if err != nil {
		return 0, nil, err
	}
	account := set.CachedAccountDetail(conf.Address)
	if account == nil {
		return 0, nil, errors.Errorf("account %s isn't in the snapshot store, sync it first", conf.Address)
	}
	return minimumbalance.NewCalculator(conf.NetParams()).MinimumBalance(account), account, nil
}
