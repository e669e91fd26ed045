package response

import (
	"time"

	"car-rental-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RevenuePointResponse struct {
	Label       string    `json:"label"`
	BucketStart time.Time `json:"bucketStart"`
	Revenue     int64     `json:"revenue"`
}

type DateRangeResponse struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	GroupBy string    `json:"groupBy"`
}

type RevenueResponse struct {
	RevenueChart []RevenuePointResponse `json:"revenueChart"`
	DateRange    DateRangeResponse      `json:"dateRange"`
}

func FromRevenueSeries(s *queries.RevenueSeries) *RevenueResponse {
	res := &RevenueResponse{RevenueChart: []RevenuePointResponse{}}
	_ = copier.Copy(&res.RevenueChart, &s.Points)
	_ = copier.Copy(&res.DateRange, &s.DateRange)
	return res
}

type DashboardResponse struct {
	TotalCustomers int64                  `json:"totalCustomers"`
	TotalCars      int64                  `json:"totalCars"`
	ActiveBookings int64                  `json:"activeBookings"`
	TotalRevenue   int64                  `json:"totalRevenue"`
	RecentActivity []*BookingResponse     `json:"recentActivity"`
	RevenueChart   []RevenuePointResponse `json:"revenueChart"`
	DateRange      DateRangeResponse      `json:"dateRange"`
}

func FromDashboard(d *queries.DashboardStats) *DashboardResponse {
	res := &DashboardResponse{
		TotalCustomers: d.TotalCustomers,
		TotalCars:      d.TotalCars,
		ActiveBookings: d.ActiveBookings,
		TotalRevenue:   d.TotalRevenue,
		RecentActivity: FromBookingList(d.RecentActivity),
		RevenueChart:   []RevenuePointResponse{},
	}
	_ = copier.Copy(&res.RevenueChart, &d.RevenueChart)
	_ = copier.Copy(&res.DateRange, &d.DateRange)
	return res
}
