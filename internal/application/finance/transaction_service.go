package finance

import (
	"context"
	"fmt"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/finance"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// transactionNumberPrefix is the document number prefix for transactions
const transactionNumberPrefix = "TRX"

// TransactionService handles financial transaction operations
type TransactionService struct {
	transactionRepo finance.FinancialTransactionRepository
	categoryRepo    finance.FinancialCategoryRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactionRepo finance.FinancialTransactionRepository,
	categoryRepo finance.FinancialCategoryRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Create records a transaction on behalf of the acting user. The
// transaction type is taken from the category, which must be active.
// When no document number is supplied one is generated as
// TRX-YYYYMMDD-NNNN.
func (s *TransactionService) Create(ctx context.Context, userID int64, req CreateTransactionRequest) (*TransactionResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	transactionDate := shared.Today()
	if req.TransactionDate != nil {
		transactionDate = shared.DateOnly(*req.TransactionDate)
	}

	transactionNumber := req.TransactionNumber
	if transactionNumber == "" {
		prefix := fmt.Sprintf("%s-%s-", transactionNumberPrefix, transactionDate.Format("20060102"))
		seq, err := s.transactionRepo.NextSequence(ctx, prefix)
		if err != nil {
			return nil, err
		}
		transactionNumber = fmt.Sprintf("%s%04d", prefix, seq)
	} else {
		exists, err := s.transactionRepo.ExistsByNumber(ctx, transactionNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Transaction with this number already exists")
		}
	}

	transaction, err := finance.NewFinancialTransaction(
		transactionNumber,
		userID,
		req.CategoryID,
		category.TransactionType,
		req.Amount,
		req.Description,
		transactionDate,
	)
	if err != nil {
		return nil, err
	}
	if err := transaction.ValidateCategory(category); err != nil {
		return nil, err
	}
	if req.ReferenceNumber != "" {
		if err := transaction.SetReference(req.ReferenceNumber); err != nil {
			return nil, err
		}
	}
	if req.PaymentMethod != "" {
		if err := transaction.SetPaymentMethod(req.PaymentMethod); err != nil {
			return nil, err
		}
	}

	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// GetByID retrieves a transaction by ID
func (s *TransactionService) GetByID(ctx context.Context, id int64) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTransactionResponse(transaction)
	return &response, nil
}

// GetByNumber retrieves a transaction by document number
func (s *TransactionService) GetByNumber(ctx context.Context, transactionNumber string) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByNumber(ctx, transactionNumber)
	if err != nil {
		return nil, err
	}
	response := ToTransactionResponse(transaction)
	return &response, nil
}

// List retrieves transactions with filtering and pagination
func (s *TransactionService) List(ctx context.Context, filter TransactionListFilter) ([]TransactionResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.TransactionType != "" {
		domainFilter.Filters["transaction_type"] = filter.TransactionType
	}
	if filter.CategoryID != 0 {
		domainFilter.Filters["category_id"] = filter.CategoryID
	}
	if filter.DateFrom != nil {
		domainFilter.Filters["transaction_date_from"] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		domainFilter.Filters["transaction_date_to"] = *filter.DateTo
	}

	transactions, err := s.transactionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.transactionRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToTransactionResponses(transactions), total, nil
}

// Update updates a transaction. Nil request fields are left unchanged.
// Moving the transaction to another category re-derives its type from
// that category.
func (s *TransactionService) Update(ctx context.Context, id int64, req UpdateTransactionRequest) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != transaction.CategoryID {
		category, err := s.categoryRepo.FindByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		transaction.CategoryID = category.ID
		transaction.TransactionType = category.TransactionType
		transaction.Touch()
		if err := transaction.ValidateCategory(category); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil {
		if err := transaction.SetAmount(*req.Amount); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if err := transaction.SetDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.ReferenceNumber != nil {
		if err := transaction.SetReference(*req.ReferenceNumber); err != nil {
			return nil, err
		}
	}
	if req.TransactionDate != nil {
		if err := transaction.SetTransactionDate(*req.TransactionDate); err != nil {
			return nil, err
		}
	}
	if req.PaymentMethod != nil {
		if err := transaction.SetPaymentMethod(*req.PaymentMethod); err != nil {
			return nil, err
		}
	}

	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// Delete removes a transaction
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.transactionRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.transactionRepo.Delete(ctx, id)
}

// Summary aggregates income and expense totals over a period
func (s *TransactionService) Summary(ctx context.Context, req SummaryRequest) (*SummaryResponse, error) {
	summary, err := s.transactionRepo.Summarize(ctx, req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}
	return &SummaryResponse{
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		Net:          summary.Net,
	}, nil
}
