package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
)

// reportSchemas is the explicit per-entity column registry. Columns are fixed
// per entity type rather than inferred from record shapes, so optional fields
// never shift the layout and empty collections still render the expected
// columns. Identity, owning-client and storage-internal fields are simply not
// listed.
var reportSchemas = map[domain.EntityType][]string{
	domain.EntityOrder: {
		"name", "villageName", "address", "phoneNumber", "typeOfPaddy",
		"numberOfBags", "totalAmount", "advanceAmount", "status", "createdAt",
	},
	domain.EntityWage: {
		"employeeName", "totalWage", "advanceWage", "advanceDebt",
		"pendingAmount", "bags", "typeOfWork", "machineType", "date", "notes",
	},
	domain.EntitySale: {
		"name", "phoneNumber", "address", "items", "totalAmount",
		"paymentStatus", "paymentMethod", "createdAt",
	},
	domain.EntityExpense: {
		"item", "description", "category", "amount", "date",
		"paymentMethod", "receiptNumber", "recordedBy",
	},
	domain.EntityIncome: {
		"item", "description", "amount", "date", "recordedBy",
	},
	domain.EntityStock: {
		"itemType", "availableQuantity", "updatedAt",
	},
}

// ReportColumns returns the ordered column descriptors for one entity type.
func ReportColumns(entity domain.EntityType) ([]domain.ReportColumn, error) {
	keys, ok := reportSchemas[entity]
	if !ok {
		return nil, fmt.Errorf("%w: no report schema for entity %q", apperrors.ErrNotFound, entity)
	}
	columns := make([]domain.ReportColumn, len(keys))
	for i, key := range keys {
		columns[i] = domain.ReportColumn{
			DisplayName: humanizeFieldKey(key),
			FieldKey:    key,
		}
	}
	return columns, nil
}

// humanizeFieldKey turns a compact field key into a readable header by
// inserting a space before each interior capital and capitalizing the first
// letter: "availableQuantity" becomes "Available Quantity".
func humanizeFieldKey(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// reportService implements the ReportSvcFacade interface.
type reportService struct {
	BaseService
	orderRepo   portsrepo.OrderRepository
	wageRepo    portsrepo.WageRepository
	saleRepo    portsrepo.SaleRepository
	expenseRepo portsrepo.ExpenseRepository
	incomeRepo  portsrepo.IncomeRepository
	stockRepo   portsrepo.StockRepository
}

// NewReportService creates a new report service over the reportable entity
// repositories.
func NewReportService(repos portsrepo.RepositoryProvider) portssvc.ReportSvcFacade {
	return &reportService{
		orderRepo:   repos.OrderRepo,
		wageRepo:    repos.WageRepo,
		saleRepo:    repos.SaleRepo,
		expenseRepo: repos.ExpenseRepo,
		incomeRepo:  repos.IncomeRepo,
		stockRepo:   repos.StockRepo,
	}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// ComputeRange fetches one entity collection for the client and date range,
// applies the entity's reconciliation rule, and shapes the result into
// columns and display-safe rows. Shaping performs no aggregation and holds no
// state across calls.
func (s *reportService) ComputeRange(ctx context.Context, clientID string, entity domain.EntityType, from, to time.Time) (*domain.ReportTable, error) {
	columns, err := ReportColumns(entity)
	if err != nil {
		return nil, err
	}
	dateRange := &domain.DateRange{Start: from, End: to}

	var rows []map[string]any
	switch entity {
	case domain.EntityOrder:
		records, err := s.orderRepo.ListOrdersByClient(ctx, clientID, dateRange)
		if err != nil {
			return nil, s.unavailable(ctx, "orders", err)
		}
		for _, o := range records {
			reconciled, err := ReconcileOrder(o)
			if err != nil {
				return nil, err
			}
			rows = append(rows, orderRow(reconciled))
		}
	case domain.EntityWage:
		records, err := s.wageRepo.ListWagesByClient(ctx, clientID, dateRange)
		if err != nil {
			return nil, s.unavailable(ctx, "wages", err)
		}
		for _, w := range records {
			reconciled, err := ReconcileWage(w)
			if err != nil {
				return nil, err
			}
			rows = append(rows, wageRow(reconciled))
		}
	case domain.EntitySale:
		records, err := s.saleRepo.ListSalesByClient(ctx, clientID, dateRange)
		if err != nil {
			return nil, s.unavailable(ctx, "sales", err)
		}
		for _, sl := range records {
			reconciled, err := ReconcileSale(sl)
			if err != nil {
				return nil, err
			}
			row, err := saleRow(reconciled)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	case domain.EntityExpense:
		records, err := s.expenseRepo.ListExpensesByClient(ctx, clientID, dateRange)
		if err != nil {
			return nil, s.unavailable(ctx, "expenses", err)
		}
		for _, e := range records {
			reconciled, err := ReconcileExpense(e)
			if err != nil {
				return nil, err
			}
			rows = append(rows, expenseRow(reconciled))
		}
	case domain.EntityIncome:
		records, err := s.incomeRepo.ListIncomeByClient(ctx, clientID, dateRange)
		if err != nil {
			return nil, s.unavailable(ctx, "income", err)
		}
		for _, in := range records {
			reconciled, err := ReconcileIncome(in)
			if err != nil {
				return nil, err
			}
			rows = append(rows, incomeRow(reconciled))
		}
	case domain.EntityStock:
		// Stock is a current snapshot; the date range does not apply.
		records, err := s.stockRepo.ListStockByClient(ctx, clientID)
		if err != nil {
			return nil, s.unavailable(ctx, "stock", err)
		}
		for _, st := range records {
			reconciled, err := ReconcileStock(st)
			if err != nil {
				return nil, err
			}
			rows = append(rows, stockRow(reconciled))
		}
	default:
		return nil, fmt.Errorf("%w: no report schema for entity %q", apperrors.ErrNotFound, entity)
	}

	if rows == nil {
		rows = []map[string]any{}
	}

	s.LogInfo(ctx, "Report computed",
		slog.String("client_id", clientID),
		slog.String("entity", string(entity)),
		slog.Int("rows", len(rows)))
	return &domain.ReportTable{Entity: entity, Columns: columns, Rows: rows}, nil
}

func (s *reportService) unavailable(ctx context.Context, collection string, err error) error {
	s.LogError(ctx, err, "Entity collection unavailable", slog.String("collection", collection))
	return &apperrors.DataUnavailableError{Collection: collection, Err: err}
}

func displayDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func orderRow(o domain.Order) map[string]any {
	return map[string]any{
		"name":          o.Name,
		"villageName":   o.VillageName,
		"address":       o.Address,
		"phoneNumber":   o.PhoneNumber,
		"typeOfPaddy":   o.TypeOfPaddy,
		"numberOfBags":  o.NumberOfBags,
		"totalAmount":   o.TotalAmount,
		"advanceAmount": o.AdvanceAmount,
		"status":        string(o.Status),
		"createdAt":     displayDate(o.CreatedAt),
	}
}

func wageRow(w domain.Wage) map[string]any {
	return map[string]any{
		"employeeName":  w.EmployeeName,
		"totalWage":     w.TotalWage,
		"advanceWage":   w.AdvanceWage,
		"advanceDebt":   w.AdvanceDebt,
		"pendingAmount": w.PendingAmount,
		"bags":          w.Bags,
		"typeOfWork":    string(w.TypeOfWork),
		"machineType":   w.MachineType,
		"date":          displayDate(w.Date),
		"notes":         w.Notes,
	}
}

// saleRow serializes the nested line items to their JSON text, the
// display-safe form for a nested value.
func saleRow(s domain.Sale) (map[string]any, error) {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize sale items for %s: %w", s.SaleID, err)
	}
	return map[string]any{
		"name":          s.Name,
		"phoneNumber":   s.PhoneNumber,
		"address":       s.Address,
		"items":         string(items),
		"totalAmount":   s.TotalAmount,
		"paymentStatus": string(s.PaymentStatus),
		"paymentMethod": string(s.PaymentMethod),
		"createdAt":     displayDate(s.CreatedAt),
	}, nil
}

func expenseRow(e domain.Expense) map[string]any {
	return map[string]any{
		"item":          e.Item,
		"description":   e.Description,
		"category":      e.Category,
		"amount":        e.Amount,
		"date":          displayDate(e.Date),
		"paymentMethod": string(e.PaymentMethod),
		"receiptNumber": e.ReceiptNumber,
		"recordedBy":    e.RecordedBy,
	}
}

func incomeRow(in domain.Income) map[string]any {
	return map[string]any{
		"item":        in.Item,
		"description": in.Description,
		"amount":      in.Amount,
		"date":        displayDate(in.Date),
		"recordedBy":  in.RecordedBy,
	}
}

func stockRow(st domain.Stock) map[string]any {
	return map[string]any{
		"itemType":          st.ItemType,
		"availableQuantity": st.AvailableQuantity,
		"updatedAt":         displayDate(st.LastUpdatedAt),
	}
}
