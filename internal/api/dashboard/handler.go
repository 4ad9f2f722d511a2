package dashboard

import (
	"net/http"

	"bulletin-board/database"

	"github.com/gin-gonic/gin"
)

type DashboardResponse struct {
	Posts int64 `json:"posts"`
	Users int64 `json:"users"`

	PostsPerAuthor []AuthorCount `json:"posts_per_author"`
	UsersPerGroup  []GroupCount  `json:"users_per_group"`

	// Parallel label/data arrays, chart-ready.
	LabelPosts  []string `json:"labelPosts"`
	DataPosts   []int64  `json:"dataPosts"`
	LabelGroups []string `json:"labelGroups"`
	DataGroups  []int64  `json:"dataGroups"`
}

// GET /dashboard returns read-only aggregates for any authenticated user.
func Dashboard(c *gin.Context) {
	postTotal, err := PostCount(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	userTotal, err := UserCount(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	byAuthor, err := PostsPerAuthor(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	byGroup, err := UsersPerGroup(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	out := DashboardResponse{
		Posts:          postTotal,
		Users:          userTotal,
		PostsPerAuthor: byAuthor,
		UsersPerGroup:  byGroup,
		LabelPosts:     make([]string, 0, len(byAuthor)),
		DataPosts:      make([]int64, 0, len(byAuthor)),
		LabelGroups:    make([]string, 0, len(byGroup)),
		DataGroups:     make([]int64, 0, len(byGroup)),
	}
	for _, a := range byAuthor {
		out.LabelPosts = append(out.LabelPosts, a.Username)
		out.DataPosts = append(out.DataPosts, a.Posts)
	}
	for _, g := range byGroup {
		out.LabelGroups = append(out.LabelGroups, g.Name)
		out.DataGroups = append(out.DataGroups, g.Users)
	}

	c.JSON(http.StatusOK, out)
}
