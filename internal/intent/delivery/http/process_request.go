package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidDays
	}
	return req, req.validate()
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processMineReq accepts an empty body as "use configured defaults".
func (h *handler) processMineReq(c *gin.Context) (mineReq, error) {
	var req mineReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
