package entities

type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

type CouponStatus string

const (
	CouponActive   CouponStatus = "active"
	CouponInactive CouponStatus = "inactive"
)

type Coupon struct {
	ID         string       `json:"id"`
	Code       string       `json:"code"`
	Type       CouponType   `json:"type"`
	Value      float64      `json:"value"`
	MinSpend   float64      `json:"minSpend"`
	Status     CouponStatus `json:"status"`
	UsageCount int          `json:"usageCount"`
}

// CouponDiscount is the result of validating a coupon against a cart total.
type CouponDiscount struct {
	DiscountAmount float64    `json:"discountAmount"`
	CouponCode     string     `json:"couponCode"`
	CouponType     CouponType `json:"couponType"`
	CouponValue    float64    `json:"couponValue"`
}
