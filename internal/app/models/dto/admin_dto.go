package dto

// StatsResponse is the admin dashboard summary
type StatsResponse struct {
	Users         map[string]int64 `json:"users"`
	Courses       int64            `json:"courses"`
	ActiveCourses int64            `json:"activeCourses"`
	Lessons       int64            `json:"lessons"`
	Exams         int64            `json:"exams"`
	Assignments   int64            `json:"assignments"`
	Questions     int64            `json:"questions"`
	Submissions   int64            `json:"submissions"`
	Subscriptions map[string]int64 `json:"subscriptions"`
	NoteOrders    map[string]int64 `json:"noteOrders"`
}

// UploadResponse describes a stored upload
type UploadResponse struct {
	ID   int64  `json:"id" example:"12"`
	URL  string `json:"url" example:"http://localhost:8080/uploads/courses/1f3c.png"`
	Path string `json:"path" example:"courses/1f3c.png"`
}
