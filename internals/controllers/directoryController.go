package controllers

import (
	"errors"
	"net/http"

	"github.com/MadhavMendiratta/vit/internals/directory"
	"github.com/MadhavMendiratta/vit/internals/middleware"
	"github.com/MadhavMendiratta/vit/internals/utils"

	"github.com/gin-gonic/gin"
)

// DirectoryController serves the protected campus-directory API: building
// profiles, room search, and textual directions.
type DirectoryController struct{}

func NewDirectoryController() *DirectoryController {
	return &DirectoryController{}
}

func (d *DirectoryController) Profile(c *gin.Context) {
	v, ok := c.Get(middleware.ContextClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	claims := v.(*utils.SessionClaims)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    claims.Subject,
			"name":  claims.Name,
			"email": claims.Email,
			"role":  claims.Role,
		},
	})
}

func (d *DirectoryController) ListBuildings(c *gin.Context) {
	all := directory.All()

	// Summaries only; the room register comes with the detail endpoint
	summaries := make([]gin.H, 0, len(all))
	for _, b := range all {
		summaries = append(summaries, gin.H{
			"id":          b.ID,
			"name":        b.Name,
			"fullName":    b.FullName,
			"description": b.Description,
			"facilities":  b.Facilities,
			"floors":      b.Floors,
			"roomCount":   len(b.Rooms),
		})
	}
	c.JSON(http.StatusOK, gin.H{"buildings": summaries})
}

func (d *DirectoryController) GetBuilding(c *gin.Context) {
	building, err := directory.ByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Building not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"building": building})
}

func (d *DirectoryController) SearchRooms(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}

	matches := directory.SearchRooms(query)
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(matches),
		"results": matches,
	})
}

const quickSearchLimit = 5

// QuickSearch returns a compact top-N slice of the full search for the
// header search box.
func (d *DirectoryController) QuickSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}

	matches := directory.SearchRooms(query)
	if len(matches) > quickSearchLimit {
		matches = matches[:quickSearchLimit]
	}
	c.JSON(http.StatusOK, gin.H{"results": matches})
}

func (d *DirectoryController) Directions(c *gin.Context) {
	buildingID := c.Query("building")
	floor := c.Query("floor")
	roomNo := c.Query("room")

	if buildingID == "" || floor == "" || roomNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "building, floor and room are required"})
		return
	}

	steps, err := directory.Directions(buildingID, floor, roomNo)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrBuildingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Building information not available"})
		case errors.Is(err, directory.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room information not available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to generate directions"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"building":   buildingID,
		"floor":      floor,
		"room":       roomNo,
		"directions": steps,
	})
}
