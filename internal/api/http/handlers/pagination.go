package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// pagination carries next/previous links computed from a total count, in the
// style of the listing pages this API replaces.
type pagination struct {
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Total    int     `json:"total"`
	NextURL  *string `json:"next_url"`
	PrevURL  *string `json:"prev_url"`
}

func currentPage(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

func paginate(c *fiber.Ctx, page, pageSize, total int) pagination {
	p := pagination{Page: page, PageSize: pageSize, Total: total}
	if page*pageSize < total {
		next := fmt.Sprintf("%s?page=%d", c.Path(), page+1)
		p.NextURL = &next
	}
	if page > 1 {
		prev := fmt.Sprintf("%s?page=%d", c.Path(), page-1)
		p.PrevURL = &prev
	}
	return p
}
