// daybook is a terminal client for the Halimou bakery API: it edits one
// day's inventory sheet, rolls yesterday's leftovers forward, shows
// period statistics and records salary advances, using the same
// screen-state packages as the UIs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/we-dream-team/Halimou/internal/apiclient"
	"github.com/we-dream-team/Halimou/internal/daybook"
	"github.com/we-dream-team/Halimou/internal/ledger"
	"github.com/we-dream-team/Halimou/internal/statview"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: daybook [flags] <command> [args]

commands:
  show                              print the day's sheet and revenue
  select <product-id>...            set the day's product list and save
  set <product-id> <field> <value>  update a counter (produced|sold|wasted) and save
  carry                             reintegrate yesterday's leftovers and save
  stats [week|7|30|all]             print the period summary
  paye [employee-id]                print the month's payroll totals
  advance <employee-id> <amount>    record a salary advance for this month
  export <file>                     download the raw export payload

flags:
`)
	flag.PrintDefaults()
}

func currency() string {
	if s := os.Getenv("CURRENCY_SYMBOL"); s != "" {
		return s
	}
	return "DA"
}

func main() {
	apiURL := flag.String("api", envOr("HALIMOU_API_URL", "http://localhost:8001"), "base URL of the bakery API")
	date := flag.String("date", time.Now().Format("2006-01-02"), "inventory date (YYYY-MM-DD)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	client := apiclient.New(*apiURL)

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "show":
		err = runShow(ctx, client, *date)
	case "select":
		err = runSelect(ctx, client, *date, flag.Args()[1:])
	case "set":
		err = runSet(ctx, client, *date, flag.Args()[1:])
	case "carry":
		err = runCarry(ctx, client, *date)
	case "stats":
		period := statview.PeriodWeek
		if flag.NArg() > 1 {
			period = statview.Period(flag.Arg(1))
		}
		err = runStats(ctx, client, period)
	case "paye":
		err = runPaye(ctx, client, flag.Arg(1))
	case "advance":
		if flag.NArg() != 3 {
			usage()
			os.Exit(2)
		}
		err = runAdvance(ctx, client, flag.Arg(1), flag.Arg(2))
	case "export":
		if flag.NArg() < 2 {
			usage()
			os.Exit(2)
		}
		err = runExport(ctx, client, flag.Arg(1))
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadSheet(ctx context.Context, c *apiclient.Client, date string) (*daybook.Sheet, error) {
	lookup, err := c.InventoryByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return daybook.NewSheet(date, lookup), nil
}

func printSheet(s *daybook.Sheet) {
	if len(s.Items) == 0 {
		fmt.Printf("%s: no products on the sheet\n", s.Date)
		return
	}
	fmt.Printf("%s\n", s.Date)
	for _, item := range s.Items {
		fmt.Printf("  %-24s %-13s produced=%-4d sold=%-4d wasted=%-4d remaining=%-4d %.2f %s\n",
			item.ProductName, item.Category,
			item.QuantityProduced, item.QuantitySold, item.QuantityWasted, item.QuantityRemaining,
			item.Price, currency())
	}
	fmt.Printf("  total revenue: %.2f %s\n", s.TotalRevenue(), currency())
}

func runShow(ctx context.Context, c *apiclient.Client, date string) error {
	s, err := loadSheet(ctx, c, date)
	if err != nil {
		return err
	}
	printSheet(s)
	return nil
}

func runSelect(ctx context.Context, c *apiclient.Client, date string, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("select: at least one product id is required")
	}
	catalog, err := c.Products(ctx, false)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	s, err := loadSheet(ctx, c, date)
	if err != nil {
		return err
	}

	s.SelectProducts(catalog, ids)
	if err := daybook.Save(ctx, c, s); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	printSheet(s)
	return nil
}

func runSet(ctx context.Context, c *apiclient.Client, date string, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("set: expected <product-id> <field> <value>")
	}
	value, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("set: value must be an integer")
	}
	field := daybook.QuantityField(args[1])
	switch field {
	case daybook.FieldProduced, daybook.FieldSold, daybook.FieldWasted:
	default:
		return fmt.Errorf("set: field must be produced, sold or wasted")
	}

	s, err := loadSheet(ctx, c, date)
	if err != nil {
		return err
	}
	if !s.SetQuantity(args[0], field, value) {
		return fmt.Errorf("set: product %s is not on the sheet", args[0])
	}
	if err := daybook.Save(ctx, c, s); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	printSheet(s)
	return nil
}

func runCarry(ctx context.Context, c *apiclient.Client, date string) error {
	s, err := loadSheet(ctx, c, date)
	if err != nil {
		return err
	}
	carry, err := daybook.LoadCarryover(ctx, c, date)
	if err != nil {
		return err
	}
	if len(carry) == 0 {
		fmt.Println("nothing left over from yesterday")
		return nil
	}
	if err := s.Reintegrate(carry); err != nil {
		return err
	}
	if err := daybook.Save(ctx, c, s); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	for _, item := range carry {
		fmt.Printf("  carried %d × %s\n", item.AddQuantity, item.Source.ProductName)
	}
	printSheet(s)
	return nil
}

func runStats(ctx context.Context, c *apiclient.Client, period statview.Period) error {
	view, err := statview.Load(ctx, c, period, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("period %s (%s .. %s)\n", view.Period, view.Start, view.End)
	fmt.Printf("  sales:    %.2f %s\n", view.Stats.TotalSales, currency())
	fmt.Printf("  produced: %d  sold: %d  wasted: %d\n",
		view.Stats.TotalProduced, view.Stats.TotalSold, view.Stats.TotalWasted)
	for _, ps := range view.Stats.ProductsStats {
		fmt.Printf("  %-24s sold %5.1f%%  waste %5.1f%%  avg/day %.1f\n",
			ps.ProductName,
			statview.SoldRate(ps.TotalSold, ps.TotalProduced),
			statview.WasteRate(ps.TotalWasted, ps.TotalProduced),
			ps.AvgSoldPerDay)
	}
	return nil
}

func runPaye(ctx context.Context, c *apiclient.Client, employeeID string) error {
	period := time.Now().Format("2006-01")
	employees, err := c.Employees(ctx, false)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	entries, err := c.Payrolls(ctx, employeeID, period)
	if err != nil {
		return fmt.Errorf("load payroll entries: %w", err)
	}

	fmt.Printf("payroll %s\n", period)
	byID := make(map[string]string, len(employees))
	for _, e := range employees {
		byID[e.ID] = e.FullName
		if employeeID == "" || e.ID == employeeID {
			fmt.Printf("  %-24s %-13s base %.2f %s\n", e.FullName, e.Role, e.BaseSalary, currency())
		}
	}
	for _, entry := range entries {
		fmt.Printf("  advance %-24s %.2f %s\n", byID[entry.EmployeeID], entry.Advances, currency())
	}

	totals := ledger.Sum(employees, entries, employeeID)
	fmt.Printf("  base %.2f  advances %.2f  remaining %.2f %s\n",
		totals.Base, totals.Advances, totals.Remaining, currency())
	return nil
}

func runAdvance(ctx context.Context, c *apiclient.Client, employeeID, rawAmount string) error {
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		return fmt.Errorf("advance: amount must be a number")
	}

	period := time.Now().Format("2006-01")
	entries, err := c.Payrolls(ctx, employeeID, period)
	if err != nil {
		return fmt.Errorf("load payroll entries: %w", err)
	}

	plan, err := ledger.PlanAdvance(entries, employeeID, period, amount)
	if err != nil {
		return err
	}
	if err := ledger.ApplyAdvance(ctx, c, plan, employeeID, period); err != nil {
		return fmt.Errorf("record advance: %w", err)
	}
	fmt.Printf("advances for %s now total %.2f %s\n", period, plan.NewTotal, currency())
	return nil
}

func runExport(ctx context.Context, c *apiclient.Client, path string) error {
	raw, err := c.Export(ctx, "", "")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %d bytes to %s\n", len(raw), path)
	return nil
}
