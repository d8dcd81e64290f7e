// moneyctl is a small terminal companion to the web UI: it talks to the
// same backend API for quick read-outs and transfers from a shell.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"moneymgr/internal/api"
	"moneymgr/internal/core"
	"moneymgr/internal/format"
)

// globals holds options shared by every command
type globals struct {
	BaseURL string        `name:"base-url" env:"API_BASE_URL" default:"http://localhost:5000/api" help:"Backend API base URL."`
	Timeout time.Duration `env:"API_TIMEOUT" default:"10s" help:"Request timeout."`
}

func (g *globals) client() *api.Client {
	return api.New(g.BaseURL, g.Timeout)
}

var cli struct {
	Globals globals `embed:""`

	Dashboard    dashboardCmd    `cmd:"" help:"Show period summaries and recent transactions."`
	Transactions transactionsCmd `cmd:"" help:"List or filter transactions."`
	Accounts     accountsCmd     `cmd:"" help:"List accounts."`
	Transfer     transferCmd     `cmd:"" help:"Move funds between two accounts."`
}

type dashboardCmd struct{}

func (c *dashboardCmd) Run(g *globals) error {
	ctx := context.Background()
	snap, err := g.client().Transactions.Dashboard(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PERIOD\tINCOME\tEXPENDITURE\tBALANCE")
	printSummary(w, "This week", snap.WeeklySummary)
	printSummary(w, "This month", snap.MonthlySummary)
	printSummary(w, "This year", snap.YearlySummary)
	if err := w.Flush(); err != nil {
		return err
	}

	if len(snap.Transactions) == 0 {
		fmt.Println("\nNo transactions.")
		return nil
	}
	fmt.Println()
	return printTransactions(snap.Transactions)
}

func printSummary(w *tabwriter.Writer, label string, p core.PeriodSummary) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		label,
		format.Currency(p.Income),
		format.Currency(p.Expenditure),
		format.Currency(p.Balance))
}

type transactionsCmd struct {
	Division  string `help:"Filter by division (PERSONAL or OFFICE)." enum:",PERSONAL,OFFICE" default:""`
	Category  string `help:"Filter by category."`
	StartDate string `name:"from" help:"Start date (YYYY-MM-DD)."`
	EndDate   string `name:"to" help:"End date (YYYY-MM-DD)."`
}

func (c *transactionsCmd) Run(g *globals) error {
	ctx := context.Background()
	client := g.client()

	criteria, err := c.criteria()
	if err != nil {
		return err
	}

	var txns []core.Transaction
	if criteria.IsZero() {
		txns, err = client.Transactions.ListAll(ctx)
	} else {
		txns, err = client.Transactions.Filter(ctx, criteria)
	}
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		fmt.Println("No transactions.")
		return nil
	}
	return printTransactions(txns)
}

func (c *transactionsCmd) criteria() (core.FilterCriteria, error) {
	crit := core.FilterCriteria{
		Division: core.Division(c.Division),
		Category: core.Category(c.Category),
	}
	if c.StartDate != "" {
		t, err := time.ParseInLocation("2006-01-02", c.StartDate, time.Local)
		if err != nil {
			return core.FilterCriteria{}, fmt.Errorf("invalid --from date: %w", err)
		}
		crit.StartDate = &t
	}
	if c.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", c.EndDate, time.Local)
		if err != nil {
			return core.FilterCriteria{}, fmt.Errorf("invalid --to date: %w", err)
		}
		end := t.Add(24*time.Hour - time.Second)
		crit.EndDate = &end
	}
	return crit, nil
}

func printTransactions(txns []core.Transaction) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tCATEGORY\tDIVISION\tAMOUNT")
	for _, tx := range txns {
		sign := "-"
		if tx.Type == core.TypeIncome {
			sign = "+"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s%s\n",
			tx.ID,
			format.Date(tx.Date),
			tx.Description,
			format.Capitalize(string(tx.Category)),
			format.Capitalize(string(tx.Division)),
			sign,
			format.Currency(tx.Amount))
	}
	return w.Flush()
}

type accountsCmd struct{}

func (c *accountsCmd) Run(g *globals) error {
	accounts, err := g.client().Accounts.ListAll(context.Background())
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBALANCE")
	for _, a := range accounts {
		fmt.Fprintf(w, "%d\t%s\t%s\n", a.ID, a.Name, format.Currency(a.Balance))
	}
	return w.Flush()
}

type transferCmd struct {
	From   int64  `required:"" help:"Source account id."`
	To     int64  `required:"" help:"Destination account id."`
	Amount string `required:"" help:"Amount to move."`
}

func (c *transferCmd) Run(g *globals) error {
	amount, err := core.ParseAmount(c.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", c.Amount, err)
	}
	req := core.TransferRequest{
		FromAccountID: c.From,
		ToAccountID:   c.To,
		Amount:        amount,
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if err := g.client().Accounts.Transfer(context.Background(), req); err != nil {
		return err
	}
	fmt.Printf("Transferred %s from account %d to account %d.\n", format.Currency(amount), c.From, c.To)
	return nil
}

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&cli,
		kong.Name("moneyctl"),
		kong.Description("Terminal client for the money-manager backend."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
