package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motoserve/garage-invoice-service/internal/domain"
)

// getPathParam retrieves a path parameter and validates it's not empty
func getPathParam(c *gin.Context, paramName string) (string, error) {
	value := c.Param(paramName)
	if value == "" {
		return "", fmt.Errorf("%s is required", paramName)
	}
	return value, nil
}

// getQueryString retrieves a string query parameter
func getQueryString(c *gin.Context, paramName string) string {
	return c.Query(paramName)
}

// parseFilterCriteria builds filter criteria from list query parameters.
// The date range is only active when both bounds parse; a single bound is
// rejected so the caller learns the range is incomplete.
func parseFilterCriteria(c *gin.Context) (domain.FilterCriteria, error) {
	criteria := domain.FilterCriteria{
		VehicleSubstring: getQueryString(c, "vehicleNumber"),
	}

	startStr := getQueryString(c, "startDate")
	endStr := getQueryString(c, "endDate")
	if startStr == "" && endStr == "" {
		return criteria, nil
	}
	if startStr == "" || endStr == "" {
		return criteria, fmt.Errorf("startDate and endDate must be provided together")
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return criteria, fmt.Errorf("invalid startDate: expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return criteria, fmt.Errorf("invalid endDate: expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return criteria, fmt.Errorf("endDate must not be before startDate")
	}

	criteria.DateFrom = &start
	criteria.DateTo = &end
	return criteria, nil
}
