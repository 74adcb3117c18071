package dto

type DashboardStatsDTO struct {
	ActiveProjects    int `json:"activeProjects"`
	TotalCranes       int `json:"totalCranes"`
	ActiveCranes      int `json:"activeCranes"`
	MaintenanceCranes int `json:"maintenanceCranes"`
	TotalTrucks       int `json:"totalTrucks"`
	ActiveTrucks      int `json:"activeTrucks"`
	TodayMovements    int `json:"todayMovements"`
}

type DashboardOverviewDTO struct {
	Stats           DashboardStatsDTO `json:"stats"`
	RecentMovements []MovementLogDTO  `json:"recentMovements"`
	ActiveProjects  []ProjectDTO      `json:"activeProjects"`
}

type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DateCountDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MonthCountDTO struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type EquipmentUsageDTO struct {
	Name       string `json:"name"`
	UsageCount int    `json:"usage_count"`
}

type DashboardChartsDTO struct {
	MovementsByDay    []DateCountDTO      `json:"movementsByDay"`
	ProjectsByStatus  []StatusCountDTO    `json:"projectsByStatus"`
	CranesByStatus    []StatusCountDTO    `json:"cranesByStatus"`
	ProjectsByMonth   []MonthCountDTO     `json:"projectsByMonth"`
	TopEquipmentTypes []EquipmentUsageDTO `json:"topEquipmentTypes"`
}
