package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderSheetQueryHandler returns the stored order sheet without rebuilding it.
type GetOrderSheetQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSheetQueryHandler creates a GetOrderSheetQueryHandler.
func NewGetOrderSheetQueryHandler(db *gorm.DB) GetOrderSheetQueryHandler {
	return GetOrderSheetQueryHandler{db: db}
}

// Handle returns the sheet. An agent without one yields agent.ErrOrderSheetNotFound,
// which the delivery app treats as "go back home".
func (h GetOrderSheetQueryHandler) Handle(ctx context.Context, query GetOrderSheetQuery) (OrderSheetResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderSheetResponse{}, err
	}

	var raw []byte
	err := h.db.WithContext(ctx).Raw(`
		SELECT order_sheet
		FROM delivery_agents
		WHERE name = ?
	`, query.AgentName()).Row().Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderSheetResponse{}, errs.NewObjectNotFoundError("agent", query.AgentName())
		}
		return OrderSheetResponse{}, err
	}

	if len(raw) == 0 || string(raw) == "null" {
		return OrderSheetResponse{}, agent.ErrOrderSheetNotFound
	}

	var sheet OrderSheetResponse
	if err = json.Unmarshal(raw, &sheet); err != nil {
		return OrderSheetResponse{}, fmt.Errorf("decode order sheet: %w", err)
	}
	return sheet, nil
}
