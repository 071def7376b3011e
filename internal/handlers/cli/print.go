package cli

import (
	"fmt"
	"io"

	"github.com/gabapcia/txsend/internal/txsubmit"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

func printHash(w io.Writer, hash common.Hash, explorerURL string) {
	fmt.Fprintf(w, "hash:      %s\n", hash.Hex())
	if url := txsubmit.TransactionURL(explorerURL, hash); url != "" {
		fmt.Fprintf(w, "explorer:  %s\n", url)
	}
}

func printTransaction(w io.Writer, tx txsubmit.SignedTransaction, explorerURL string) {
	fmt.Fprintln(w, "transaction broadcast")
	printHash(w, tx.Hash, explorerURL)
	fmt.Fprintf(w, "from:      %s\n", tx.From.Hex())
	fmt.Fprintf(w, "nonce:     %d\n", tx.Nonce)
	fmt.Fprintf(w, "raw:       %s\n", hexutil.Encode(tx.Raw))
}

func printReceipt(w io.Writer, r txsubmit.Receipt, explorerURL string) {
	fmt.Fprintln(w, "transaction confirmed")
	printHash(w, r.TxHash, explorerURL)
	fmt.Fprintf(w, "status:    %s\n", r.Status)
	fmt.Fprintf(w, "block:     %d (%s)\n", r.BlockNumber, r.BlockHash.Hex())
	fmt.Fprintf(w, "from:      %s\n", r.From.Hex())

	switch {
	case r.To != nil:
		fmt.Fprintf(w, "to:        %s\n", r.To.Hex())
	case r.ContractAddress != nil:
		fmt.Fprintf(w, "contract:  %s\n", r.ContractAddress.Hex())
	}

	value := "0"
	if r.Value != nil {
		value = r.Value.String()
	}
	fmt.Fprintf(w, "value:     %s\n", value)
	fmt.Fprintf(w, "data:      %s\n", hexutil.Encode(r.Data))
	fmt.Fprintf(w, "gas used:  %d\n", r.GasUsed)
}
