package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawscare/vet-clinic-site/i18n"
)

// GetTranslations handles GET /api/translations/:lang, returning the dictionary with English gaps filled in
func GetTranslations(c *gin.Context) {
	lang := c.Param("lang")
	if !i18n.IsSupported(lang) {
		respondError(c, http.StatusNotFound, CodeNotFound, "Language not supported")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"lang":     lang,
		"dir":      i18n.Direction(lang),
		"messages": i18n.Default.Dictionary(lang),
	})
}
