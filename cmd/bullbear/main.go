package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decred/slog"

	"github.com/arielzenprotocol/contracts/bullbear"
	"github.com/arielzenprotocol/contracts/cost"
	"github.com/arielzenprotocol/contracts/txskel"
)

func getDebugLevel(debugStr string) (slog.Level, error) {
	switch debugStr {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown debug level: %s", debugStr)
	}
}

func describeLock(l txskel.Lock) string {
	switch lk := l.(type) {
	case txskel.PKLock:
		return fmt.Sprintf("pk:%x", lk.PKHash[:])
	case txskel.ContractLock:
		return fmt.Sprintf("contract:%s", lk.ID)
	default:
		return fmt.Sprintf("%T", l)
	}
}

func realMain() error {
	invPath := flag.String("invocation", "", "path to the YAML invocation file")
	debugStr := flag.String("debuglevel", "info", "log level: debug, info, warn, error")
	flag.Parse()

	level, err := getDebugLevel(*debugStr)
	if err != nil {
		return err
	}
	backend := slog.NewBackend(os.Stderr)
	log := backend.Logger("BULL")
	log.SetLevel(level)

	if *invPath == "" {
		return fmt.Errorf("missing -invocation")
	}
	inv, err := loadInvocation(*invPath)
	if err != nil {
		return err
	}

	cid, err := inv.contractID()
	if err != nil {
		return err
	}
	sender, err := inv.sender()
	if err != nil {
		return err
	}
	skel, err := inv.skeleton(cid)
	if err != nil {
		return err
	}
	payload, err := inv.payload()
	if err != nil {
		return err
	}

	log.Infof("evaluating %q against contract %s, %d collateral inputs (%d units)",
		inv.Command, cid, len(inv.Inputs), skel.AvailableAmount(bullbear.CollateralAsset))

	var m cost.Meter
	res, err := bullbear.Evaluate(&m, skel, bullbear.ContractContext{}, cid,
		inv.Command, sender, payload, nil, nil)
	if err != nil {
		log.Errorf("evaluation failed after %d cost units: %v", m.Used(), err)
		return err
	}

	log.Infof("evaluation succeeded, %d cost units charged", m.Used())
	for i, mint := range res.Tx.Mints() {
		log.Infof("mint[%d]: %d of %s", i, mint.Amount, mint.Asset)
	}
	for i, out := range res.Tx.Outputs() {
		log.Infof("output[%d]: %d of %s -> %s", i, out.Spend.Amount, out.Spend.Asset,
			describeLock(out.Lock))
	}
	if res.Message == nil {
		log.Debugf("no outgoing message")
	}
	log.Debugf("state directive: %d", res.State)
	return nil
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
