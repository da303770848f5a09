package request

import (
	"testing"

	"printdesk/internal/domain/entities"
)

func TestOrderUpdateRequest_ToPatch(t *testing.T) {
	customer := "Lee"
	status := "Production"
	r := OrderUpdateRequest{Customer: &customer, Status: &status}

	p := r.ToPatch()
	if p.Customer == nil || *p.Customer != "Lee" {
		t.Fatalf("expected customer to be carried, got %+v", p.Customer)
	}
	if p.Status == nil || *p.Status != "Production" {
		t.Fatalf("expected status to be carried, got %+v", p.Status)
	}
	if p.Phone != nil || p.Total != nil || p.Specs != nil {
		t.Fatalf("absent fields must stay nil: %+v", p)
	}
}

func TestOrderCreateRequest_ToEntity(t *testing.T) {
	o := OrderCreateRequest{ID: " ORD-1 ", Customer: "Lee", Priority: entities.PriorityUrgent}.ToEntity()
	if o.ID != "ORD-1" || o.Priority != entities.PriorityUrgent {
		t.Fatalf("unexpected order: %+v", o)
	}
}

func TestCouponRequest_ToEntity(t *testing.T) {
	c := CouponRequest{Code: "raya", Type: entities.CouponFixed, Value: 5}.ToEntity()
	if c.Status != entities.CouponActive {
		t.Fatalf("expected active default, got %q", c.Status)
	}

	c = CouponRequest{Code: "raya", Status: entities.CouponInactive}.ToEntity()
	if c.Status != entities.CouponInactive {
		t.Fatalf("expected inactive, got %q", c.Status)
	}
}

func TestSaveColumnsRequest_ToEntities(t *testing.T) {
	r := SaveColumnsRequest{Columns: []ColumnRequest{
		{ID: "col-2", Title: "Artwork Checking", Color: "bg-yellow-500"},
		{ID: "col-1", Title: "New Order"},
	}}
	cols := r.ToEntities()
	if len(cols) != 2 || cols[0].ID != "col-2" || cols[0].Color != "bg-yellow-500" || cols[1].Title != "New Order" {
		t.Fatalf("unexpected columns: %+v", cols)
	}
}
