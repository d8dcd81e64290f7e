package http

import (
	"sort"

	"github.com/shopspring/decimal"

	"moneymgr/internal/core"
	"moneymgr/internal/format"
	"moneymgr/internal/session"
)

// View models are plain data for the templates. All formatting happens
// here so the templates stay free of function calls beyond range/if.

type PageData struct {
	Theme        string
	Cards        CardsData
	Categories   CategorySummaryData
	Chart        ChartData
	Accounts     AccountsData
	Transactions TransactionsData
	Form         *TransactionFormData
}

type CardData struct {
	Title       string
	Income      string
	Expenditure string
	Balance     string
	Deficit     bool
}

type CardsData struct {
	Loaded  bool
	Err     string
	Monthly CardData
	Weekly  CardData
	Yearly  CardData
}

type CategoryItemData struct {
	Label   string
	Style   string
	Color   string
	Amount  string
	Percent int
}

type CategorySummaryData struct {
	Loaded bool
	Err    string
	Items  []CategoryItemData
}

type ChartData struct {
	Loaded     bool
	Err        string
	Income     string
	Expense    string
	IncomePct  int
	ExpensePct int
}

type AccountRowData struct {
	ID      int64
	Name    string
	Balance string
}

type AccountsData struct {
	Err  string
	Rows []AccountRowData
}

type TransactionRowData struct {
	ID          int64
	Description string
	Category    string
	Style       string
	Division    string
	Date        string
	Amount      string
	Income      bool
}

type TransactionsData struct {
	Err      string
	Filtered bool
	Filter   FilterData
	Rows     []TransactionRowData
}

type FilterData struct {
	Division  string
	Category  string
	StartDate string
	EndDate   string

	Divisions  []OptionData
	Categories []OptionData
}

type OptionData struct {
	Value    string
	Label    string
	Selected bool
}

type TransactionFormData struct {
	Editing bool
	ID      int64

	Type        string
	Amount      string
	Description string
	Category    string
	Division    string
	Date        string

	Categories []OptionData
	Divisions  []OptionData
	Error      string
}

type ConfirmData struct {
	Kind    string
	ID      int64
	Message string
}

func (s *Server) pageData() PageData {
	v := s.sess.View()
	return PageData{
		Theme:        string(v.Theme),
		Cards:        buildCards(v),
		Categories:   buildCategorySummary(v),
		Chart:        buildChart(v),
		Accounts:     buildAccounts(v),
		Transactions: buildTransactions(v),
		Form:         buildForm(v, ""),
	}
}

func buildCards(v session.View) CardsData {
	d := CardsData{Err: v.DashboardErr}
	if v.Snapshot == nil {
		return d
	}
	d.Loaded = true
	d.Monthly = buildCard("This Month", v.Snapshot.MonthlySummary)
	d.Weekly = buildCard("This Week", v.Snapshot.WeeklySummary)
	d.Yearly = buildCard("This Year", v.Snapshot.YearlySummary)
	return d
}

func buildCard(title string, p core.PeriodSummary) CardData {
	return CardData{
		Title:       title,
		Income:      format.Currency(p.Income),
		Expenditure: format.Currency(p.Expenditure),
		Balance:     format.Currency(p.Balance),
		Deficit:     p.Balance.IsNegative(),
	}
}

// buildCategorySummary lists expense categories by descending amount.
// Zero-valued categories are dropped rather than rendered as empty bars.
func buildCategorySummary(v session.View) CategorySummaryData {
	d := CategorySummaryData{Err: v.DashboardErr}
	if v.Snapshot == nil {
		return d
	}
	d.Loaded = true

	total := decimal.Zero
	for _, amt := range v.Snapshot.CategorySummary {
		if amt.IsPositive() {
			total = total.Add(amt)
		}
	}

	for cat, amt := range v.Snapshot.CategorySummary {
		if !amt.IsPositive() {
			continue
		}
		pct := 0
		if total.IsPositive() {
			pct = int(amt.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		}
		d.Items = append(d.Items, CategoryItemData{
			Label:   format.Capitalize(string(cat)),
			Style:   format.CategoryStyle(cat),
			Color:   format.CategoryColor(cat),
			Amount:  format.Currency(amt),
			Percent: pct,
		})
	}
	sort.Slice(d.Items, func(i, j int) bool {
		if d.Items[i].Percent != d.Items[j].Percent {
			return d.Items[i].Percent > d.Items[j].Percent
		}
		return d.Items[i].Label < d.Items[j].Label
	})
	return d
}

// buildChart compares monthly income against monthly expenditure as two
// bars scaled to the larger of the two.
func buildChart(v session.View) ChartData {
	d := ChartData{Err: v.DashboardErr}
	if v.Snapshot == nil {
		return d
	}
	d.Loaded = true

	income := v.Snapshot.MonthlySummary.Income
	expense := v.Snapshot.MonthlySummary.Expenditure
	d.Income = format.Currency(income)
	d.Expense = format.Currency(expense)

	max := income
	if expense.GreaterThan(max) {
		max = expense
	}
	if max.IsPositive() {
		hundred := decimal.NewFromInt(100)
		d.IncomePct = int(income.Div(max).Mul(hundred).Round(0).IntPart())
		d.ExpensePct = int(expense.Div(max).Mul(hundred).Round(0).IntPart())
	}
	return d
}

func buildAccounts(v session.View) AccountsData {
	d := AccountsData{Err: v.AccountsErr}
	for _, a := range v.Accounts {
		d.Rows = append(d.Rows, AccountRowData{
			ID:      a.ID,
			Name:    a.Name,
			Balance: format.Currency(a.Balance),
		})
	}
	return d
}

func buildTransactions(v session.View) TransactionsData {
	d := TransactionsData{
		Err:      v.DashboardErr,
		Filtered: v.Filter != nil,
		Filter:   buildFilter(v.Filter),
	}
	for _, tx := range v.Transactions {
		d.Rows = append(d.Rows, TransactionRowData{
			ID:          tx.ID,
			Description: tx.Description,
			Category:    format.Capitalize(string(tx.Category)),
			Style:       format.CategoryStyle(tx.Category),
			Division:    format.Capitalize(string(tx.Division)),
			Date:        format.Date(tx.Date),
			Amount:      format.Currency(tx.Amount),
			Income:      tx.Type == core.TypeIncome,
		})
	}
	return d
}

func buildFilter(f *core.FilterCriteria) FilterData {
	d := FilterData{}
	if f != nil {
		d.Division = string(f.Division)
		d.Category = string(f.Category)
		if f.StartDate != nil {
			d.StartDate = format.InputDate(*f.StartDate)
		}
		if f.EndDate != nil {
			d.EndDate = format.InputDate(*f.EndDate)
		}
	}
	d.Divisions = divisionOptions(d.Division)
	d.Categories = allCategoryOptions(d.Category)
	return d
}

func buildForm(v session.View, errMsg string) *TransactionFormData {
	if v.Form == session.FormClosed {
		return nil
	}

	d := &TransactionFormData{
		Type:  string(core.TypeExpense),
		Error: errMsg,
	}
	if v.Form == session.FormEdit && v.EditTarget != nil {
		tx := v.EditTarget
		d.Editing = true
		d.ID = tx.ID
		d.Type = string(tx.Type)
		d.Amount = tx.Amount.StringFixed(2)
		d.Description = tx.Description
		d.Category = string(tx.Category)
		d.Division = string(tx.Division)
		d.Date = format.InputDate(tx.Date)
	}
	d.Categories = categoryOptions(core.TransactionType(d.Type), d.Category)
	d.Divisions = divisionOptions(d.Division)
	return d
}

func categoryOptions(t core.TransactionType, selected string) []OptionData {
	var opts []OptionData
	for _, c := range core.CategoriesFor(t) {
		opts = append(opts, OptionData{
			Value:    string(c),
			Label:    format.Capitalize(string(c)),
			Selected: string(c) == selected,
		})
	}
	return opts
}

// allCategoryOptions is the union used by the filter panel, where no
// transaction type narrows the choice. OTHER appears once.
func allCategoryOptions(selected string) []OptionData {
	seen := map[core.Category]bool{}
	var opts []OptionData
	for _, t := range []core.TransactionType{core.TypeIncome, core.TypeExpense} {
		for _, c := range core.CategoriesFor(t) {
			if seen[c] {
				continue
			}
			seen[c] = true
			opts = append(opts, OptionData{
				Value:    string(c),
				Label:    format.Capitalize(string(c)),
				Selected: string(c) == selected,
			})
		}
	}
	return opts
}

func divisionOptions(selected string) []OptionData {
	var opts []OptionData
	for _, d := range []core.Division{core.DivisionPersonal, core.DivisionOffice} {
		opts = append(opts, OptionData{
			Value:    string(d),
			Label:    format.Capitalize(string(d)),
			Selected: string(d) == selected,
		})
	}
	return opts
}
