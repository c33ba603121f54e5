package console

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafathanna/invento-app/internal/core/apperror"
	"github.com/rafathanna/invento-app/internal/core/types"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/product"
	"github.com/rafathanna/invento-app/internal/domain/catalogs/warehouse"
	"github.com/rafathanna/invento-app/internal/domain/documents"
	"github.com/rafathanna/invento-app/internal/render"
)

// runDraftBuilder starts the interactive invoice builder for the given kind.
// The draft lives only inside this program run; quitting discards it.
func (c *Console) runDraftBuilder(ctx context.Context, kind documents.Kind, createdBy string) error {
	if strings.TrimSpace(createdBy) == "" {
		return fmt.Errorf("--by=<name> is required to create an invoice")
	}

	m := newDraftModel(ctx, c, kind, createdBy)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("draft builder: %w", err)
	}

	if dm, ok := final.(draftModel); ok && dm.snapshot != nil {
		fmt.Printf("%s✓ %s #%d submitted, total %s%s\n", Green,
			dm.snapshot.Kind.Title(), dm.snapshot.InvoiceID,
			types.FormatAmount(dm.snapshot.Totals.Total), Reset)
		if dm.pdfPath != "" {
			fmt.Printf("%s✓ Saved: %s%s\n", Green, dm.pdfPath, Reset)
		}
	}
	return nil
}

type draftStep int

const (
	stepCounterparty draftStep = iota
	stepReview
	stepPickProduct
	stepPickWarehouse
	stepLineForm
	stepTaxForm
	stepSubmitting
	stepDone
)

type pickEntry struct {
	id      int64
	name    string
	details string
}

// messages
type counterpartiesMsg struct{ entries []pickEntry }
type productsMsg struct{ products []product.Product }
type warehousesMsg struct{ warehouses []warehouse.Warehouse }
type draftErrMsg struct{ err error }
type submittedMsg struct{ snapshot *documents.Snapshot }
type pdfSavedMsg struct{ path string }

// stockView is the shared product snapshot. The draft's stock guard reads it
// through a pointer so every copy of the model sees the fetched products.
type stockView struct {
	products []product.Product
}

func (s *stockView) available(productID, warehouseID int64) float64 {
	for i := range s.products {
		if s.products[i].ID == productID {
			return s.products[i].AvailableIn(warehouseID)
		}
	}
	return 0
}

type draftModel struct {
	ctx     context.Context
	console *Console
	kind    documents.Kind

	draft *documents.Draft
	stock *stockView

	step      draftStep
	cpLoaded  bool
	prdLoaded bool
	whLoaded  bool
	errText   string

	counterparties []pickEntry
	cpName         string

	// warehouses is the full catalog, loaded for purchases only: a purchase
	// line may target a warehouse the product has never been stocked in.
	warehouses []warehouse.Warehouse

	selProduct *product.Product
	selStock   *product.WarehouseStock

	cursor int
	inputs []textinput.Model
	focus  int

	snapshot *documents.Snapshot
	pdfPath  string
}

func newDraftModel(ctx context.Context, c *Console, kind documents.Kind, createdBy string) draftModel {
	m := draftModel{
		ctx:     ctx,
		console: c,
		kind:    kind,
		step:    stepCounterparty,
		stock:   &stockView{},
	}

	if kind == documents.KindSales {
		m.draft = documents.NewSalesDraft(m.stock.available)
		m.whLoaded = true
	} else {
		m.draft = documents.NewPurchaseDraft()
	}
	m.draft.CreatedBy = createdBy
	return m
}

func (m draftModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCounterparties(), m.loadProducts()}
	if m.kind == documents.KindPurchase {
		cmds = append(cmds, m.loadWarehouses())
	}
	return tea.Batch(cmds...)
}

func (m draftModel) loadCounterparties() tea.Cmd {
	return func() tea.Msg {
		var entries []pickEntry
		if m.kind == documents.KindSales {
			customers, err := m.console.svc.Customers.GetAll(m.ctx)
			if err != nil {
				return draftErrMsg{err}
			}
			for _, c := range customers {
				entries = append(entries, pickEntry{id: c.ID, name: c.Name, details: c.Phone})
			}
		} else {
			suppliers, err := m.console.svc.Suppliers.GetAll(m.ctx)
			if err != nil {
				return draftErrMsg{err}
			}
			for _, s := range suppliers {
				entries = append(entries, pickEntry{id: s.ID, name: s.Name, details: s.Phone})
			}
		}
		return counterpartiesMsg{entries}
	}
}

func (m draftModel) loadProducts() tea.Cmd {
	return func() tea.Msg {
		products, err := m.console.svc.Products.GetAll(m.ctx)
		if err != nil {
			return draftErrMsg{err}
		}
		return productsMsg{products}
	}
}

func (m draftModel) loadWarehouses() tea.Cmd {
	return func() tea.Msg {
		warehouses, err := m.console.svc.Warehouses.GetAll(m.ctx)
		if err != nil {
			return draftErrMsg{err}
		}
		return warehousesMsg{warehouses}
	}
}

func (m draftModel) submit() tea.Cmd {
	return func() tea.Msg {
		var (
			snap *documents.Snapshot
			err  error
		)
		if m.kind == documents.KindSales {
			snap, err = m.console.svc.Sales.Submit(m.ctx, m.draft, m.cpName)
		} else {
			snap, err = m.console.svc.Purchases.Submit(m.ctx, m.draft, m.cpName)
		}
		if err != nil {
			return draftErrMsg{err}
		}
		return submittedMsg{snap}
	}
}

func (m draftModel) savePDF() tea.Cmd {
	snap := m.snapshot
	return func() tea.Msg {
		data, err := render.InvoicePDF(snap)
		if err != nil {
			return draftErrMsg{err}
		}
		path := fmt.Sprintf("%s-invoice-%d.pdf", snap.Kind, snap.InvoiceID)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return draftErrMsg{fmt.Errorf("write %s: %w", path, err)}
		}
		return pdfSavedMsg{path}
	}
}

func (m draftModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case counterpartiesMsg:
		m.counterparties = msg.entries
		m.cpLoaded = true
		return m, nil

	case productsMsg:
		m.stock.products = msg.products
		m.prdLoaded = true
		return m, nil

	case warehousesMsg:
		m.warehouses = msg.warehouses
		m.whLoaded = true
		return m, nil

	case draftErrMsg:
		m.errText = friendly(msg.err)
		if m.step == stepSubmitting {
			// Leave the draft intact so the lines can be fixed and resubmitted.
			m.step = stepReview
		}
		m.cpLoaded = true
		m.prdLoaded = true
		m.whLoaded = true
		return m, nil

	case submittedMsg:
		m.snapshot = msg.snapshot
		m.step = stepDone
		m.errText = ""
		return m, nil

	case pdfSavedMsg:
		m.pdfPath = msg.path
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m draftModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.step {
	case stepCounterparty:
		return m.keyCounterparty(msg)
	case stepReview:
		return m.keyReview(msg)
	case stepPickProduct:
		return m.keyPickProduct(msg)
	case stepPickWarehouse:
		return m.keyPickWarehouse(msg)
	case stepLineForm:
		return m.keyLineForm(msg)
	case stepTaxForm:
		return m.keyTaxForm(msg)
	case stepDone:
		switch msg.String() {
		case "p":
			return m, m.savePDF()
		default:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m draftModel) keyCounterparty(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.counterparties)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.counterparties) {
			entry := m.counterparties[m.cursor]
			m.draft.CounterpartyID = entry.id
			m.cpName = entry.name
			m.step = stepReview
			m.cursor = 0
			m.errText = ""
		}
	}
	return m, nil
}

func (m draftModel) keyReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.draft.Lines)-1 {
			m.cursor++
		}
	case "a":
		m.step = stepPickProduct
		m.cursor = 0
		m.errText = ""
	case "d":
		if err := m.draft.RemoveLine(m.cursor); err == nil && m.cursor > 0 {
			m.cursor--
		}
	case "t":
		m.initTaxForm()
		m.step = stepTaxForm
	case "s":
		if err := m.draft.Validate(); err != nil {
			m.errText = friendly(err)
			return m, nil
		}
		m.step = stepSubmitting
		m.errText = ""
		return m, m.submit()
	}
	return m, nil
}

func (m draftModel) keyPickProduct(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.stock.products
	switch msg.String() {
	case "q", "esc":
		m.step = stepReview
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(products)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(products) {
			m.selProduct = &products[m.cursor]
			m.step = stepPickWarehouse
			m.cursor = 0
		}
	}
	return m, nil
}

// warehouseOptions lists the pickable warehouses for the selected product.
// Sales draw from the product's stock tuples; purchases offer every
// warehouse, with the product's current quantity there (zero when unlinked).
func (m draftModel) warehouseOptions() []product.WarehouseStock {
	if m.kind == documents.KindSales {
		return m.selProduct.Warehouses
	}
	opts := make([]product.WarehouseStock, len(m.warehouses))
	for i, w := range m.warehouses {
		opts[i] = product.WarehouseStock{
			WarehouseID:   w.ID,
			WarehouseName: w.Name,
			Quantity:      m.selProduct.AvailableIn(w.ID),
		}
	}
	return opts
}

func (m draftModel) keyPickWarehouse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stocks := m.warehouseOptions()
	switch msg.String() {
	case "q", "esc":
		m.step = stepPickProduct
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(stocks)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(stocks) {
			m.selStock = &stocks[m.cursor]
			m.initLineForm()
			m.step = stepLineForm
		}
	}
	return m, nil
}

func (m *draftModel) initLineForm() {
	m.inputs = make([]textinput.Model, 2)

	m.inputs[0] = textinput.New()
	m.inputs[0].Placeholder = "Quantity"
	m.inputs[0].Focus()

	m.inputs[1] = textinput.New()
	m.inputs[1].Placeholder = "Unit price"
	m.inputs[1].SetValue(strconv.FormatFloat(m.selProduct.Price, 'f', -1, 64))

	m.focus = 0
}

func (m *draftModel) initTaxForm() {
	m.inputs = make([]textinput.Model, 1)
	m.inputs[0] = textinput.New()
	m.inputs[0].Placeholder = "Tax percentage"
	m.inputs[0].SetValue(m.draft.TaxPercentage.String())
	m.inputs[0].Focus()
	m.focus = 0
}

func (m draftModel) keyLineForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.step = stepPickWarehouse
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.inputs[m.focus].Blur()
		if msg.String() == "shift+tab" || msg.String() == "up" {
			m.focus--
		} else {
			m.focus++
		}
		if m.focus < 0 {
			m.focus = len(m.inputs) - 1
		}
		if m.focus >= len(m.inputs) {
			m.focus = 0
		}
		return m, m.inputs[m.focus].Focus()
	case "enter":
		qty, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[0].Value()), 64)
		if err != nil {
			m.errText = "invalid quantity"
			return m, nil
		}
		price, err := types.NewMoneyFromString(strings.TrimSpace(m.inputs[1].Value()))
		if err != nil {
			m.errText = "invalid unit price"
			return m, nil
		}

		line := documents.NewLine(m.selProduct.ID, m.selProduct.Name,
			m.selStock.WarehouseID, m.selStock.WarehouseName, qty, price)
		if err := m.draft.AddLine(line); err != nil {
			m.errText = friendly(err)
			return m, nil
		}
		m.step = stepReview
		m.cursor = 0
		m.errText = ""
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m draftModel) keyTaxForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.step = stepReview
		return m, nil
	case "enter":
		pct, err := types.NewMoneyFromString(strings.TrimSpace(m.inputs[0].Value()))
		if err != nil {
			m.errText = "invalid tax percentage"
			return m, nil
		}
		if err := m.draft.SetTaxPercentage(pct); err != nil {
			m.errText = friendly(err)
			return m, nil
		}
		m.step = stepReview
		m.errText = ""
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m draftModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m draftModel) View() string {
	if !m.cpLoaded || !m.prdLoaded || !m.whLoaded {
		return "\n  Loading catalogs...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(" "+m.kind.Title()+" builder ") + "\n\n")

	switch m.step {
	case stepCounterparty:
		b.WriteString(m.viewPickList(m.kind.CounterpartyLabel(), m.entriesView()))
		b.WriteString(helpStyle.Render("\n  ↑/↓ move  enter select  q quit\n"))
	case stepReview:
		b.WriteString(m.viewReview())
	case stepPickProduct:
		b.WriteString(m.viewProducts())
		b.WriteString(helpStyle.Render("\n  ↑/↓ move  enter select  esc back\n"))
	case stepPickWarehouse:
		b.WriteString(m.viewWarehouses())
		b.WriteString(helpStyle.Render("\n  ↑/↓ move  enter select  esc back\n"))
	case stepLineForm:
		b.WriteString(m.viewLineForm())
	case stepTaxForm:
		b.WriteString("  Tax percentage:\n  " + m.inputs[0].View() + "\n")
		b.WriteString(helpStyle.Render("\n  enter apply  esc back\n"))
	case stepSubmitting:
		b.WriteString("  Submitting...\n")
	case stepDone:
		b.WriteString(m.viewDone())
	}

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render("  "+m.errText) + "\n")
	}
	return b.String()
}

func (m draftModel) entriesView() []string {
	lines := make([]string, len(m.counterparties))
	for i, e := range m.counterparties {
		lines[i] = fmt.Sprintf("%s (%s)", e.name, e.details)
	}
	return lines
}

func (m draftModel) viewPickList(label string, rows []string) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("  Select "+label) + "\n\n")
	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("  (nothing to select)\n"))
		return b.String()
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", cursor, row))
	}
	return b.String()
}

func (m draftModel) viewProducts() string {
	rows := make([]string, len(m.stock.products))
	for i, p := range m.stock.products {
		rows[i] = fmt.Sprintf("%s [%s]  price %.2f  stock %.0f", p.Name, p.SKU, p.Price, p.TotalStock())
	}
	return m.viewPickList("product", rows)
}

func (m draftModel) viewWarehouses() string {
	stocks := m.warehouseOptions()
	rows := make([]string, len(stocks))
	for i, s := range stocks {
		rows[i] = fmt.Sprintf("%s  (%.0f in stock)", s.WarehouseName, s.Quantity)
	}
	return m.viewPickList("warehouse for "+m.selProduct.Name, rows)
}

func (m draftModel) viewLineForm() string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("  "+m.selProduct.Name+" @ "+m.selStock.WarehouseName) + "\n\n")
	labels := []string{"Quantity:", "Unit price:"}
	for i, input := range m.inputs {
		b.WriteString("  " + labels[i] + "\n")
		b.WriteString("  " + input.View() + "\n\n")
	}
	b.WriteString(helpStyle.Render("  tab next  enter add line  esc back\n"))
	return b.String()
}

func (m draftModel) viewReview() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s: %s\n", m.kind.CounterpartyLabel(), accentStyle.Render(m.cpName)))
	b.WriteString(fmt.Sprintf("  Created by: %s\n\n", m.draft.CreatedBy))

	if len(m.draft.Lines) == 0 {
		b.WriteString(helpStyle.Render("  No lines yet. Press 'a' to add one.\n"))
	} else {
		for i, line := range m.draft.Lines {
			cursor := "  "
			if i == m.cursor {
				cursor = accentStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("  %s%s @ %s: %.0f x %s = %s\n", cursor,
				line.ProductName, line.WarehouseName, line.Quantity,
				line.UnitPrice.StringFixed(2), line.Total.StringFixed(2)))
		}
	}

	totals := m.draft.Totals()
	b.WriteString(fmt.Sprintf("\n  Subtotal: %s\n", types.FormatAmount(totals.Subtotal)))
	b.WriteString(fmt.Sprintf("  Tax (%s%%): %s\n", m.draft.TaxPercentage.String(), types.FormatAmount(totals.TaxAmount)))
	b.WriteString(successStyle.Render(fmt.Sprintf("  Total: %s", types.FormatAmount(totals.Total))) + "\n")

	b.WriteString(helpStyle.Render("\n  a add line  d delete line  t tax  s submit  q quit\n"))
	return b.String()
}

func (m draftModel) viewDone() string {
	var b strings.Builder
	snap := m.snapshot
	b.WriteString(successStyle.Render(fmt.Sprintf("  ✓ Submitted: invoice #%d", snap.InvoiceID)) + "\n\n")
	b.WriteString(fmt.Sprintf("  %s: %s\n", snap.Kind.CounterpartyLabel(), snap.CounterpartyName))
	b.WriteString(fmt.Sprintf("  Total: %s\n", types.FormatAmount(snap.Totals.Total)))
	b.WriteString(helpStyle.Render("\n  p save PDF  any other key to exit\n"))
	return b.String()
}

// friendly prefers the curated failure wording over the raw error chain.
func friendly(err error) string {
	if appErr, ok := apperror.AsAppError(err); ok {
		return appErr.FriendlyMessage()
	}
	return err.Error()
}
