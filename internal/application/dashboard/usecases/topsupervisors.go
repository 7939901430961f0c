package usecases

import (
	"context"
	"fmt"
	"sort"

	"bugtrail/internal/domain/dashboard"
)

// TopSupervisors ranks the project's supervisors by the number of tickets
// they created in the project, descending. The repository returns rows in
// supervisor insertion order and the sort is stable, so ties keep that order.
func (uc *GetReportsUseCase) TopSupervisors(ctx context.Context, projectID uint) ([]dashboard.SupervisorCount, error) {
	if err := uc.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	counts, err := uc.dashboardRepo.SupervisorTicketCounts(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to rank supervisors", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to rank supervisors: %w", err)
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts, nil
}
