package handlers

import (
	"printdesk/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// HeaderActor names the back-office user performing a request. It is recorded
// on order history and defaults to the admin identity.
const HeaderActor = "X-Actor"

func actorFrom(c *gin.Context) entities.Actor {
	return entities.NewActor(c.GetHeader(HeaderActor))
}
