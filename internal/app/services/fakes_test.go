package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/helpers"
	"github.com/genius/elearning/internal/pkg/websocket"
)

func paginate[T any](items []T, page helpers.PageRequest) []T {
	if page.Limit == 0 {
		return items
	}
	start := int(page.Offset())
	if start >= len(items) {
		return []T{}
	}
	end := start + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Phone == u.Phone {
			return apperrors.ErrPhoneAlreadyExists
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByPhone(_ context.Context, phone string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.users[u.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	existing.Name, existing.GuardianPhone, existing.EducationalLevelID = u.Name, u.GuardianPhone, u.EducationalLevelID
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id int64, hashed string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = hashed
	return nil
}

func (f *fakeUserStore) UpdateRole(_ context.Context, id int64, role models.Role, perms []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Role, u.Permissions = role, perms
	return nil
}

func (f *fakeUserStore) List(_ context.Context, filter dto.UserFilter, page helpers.PageRequest) ([]*models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.User
	for _, u := range f.users {
		if filter.Role == "" || string(u.Role) == filter.Role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, page), int64(len(out)), nil
}

func (f *fakeUserStore) IDsByRole(_ context.Context, role models.Role) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []int64
	for id, u := range f.users {
		if u.Role == role {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type fakeLevelStore struct {
	levels map[int64]*models.EducationalLevel
}

func (f *fakeLevelStore) Create(_ context.Context, l *models.EducationalLevel) error {
	for _, existing := range f.levels {
		if existing.Name == l.Name || existing.NameAr == l.NameAr || existing.Order == l.Order {
			return apperrors.NewConflictError("Educational level already exists")
		}
	}
	l.ID = int64(len(f.levels) + 1)
	f.levels[l.ID] = l
	return nil
}

func (f *fakeLevelStore) GetByID(_ context.Context, id int64) (*models.EducationalLevel, error) {
	if l, ok := f.levels[id]; ok {
		return l, nil
	}
	return nil, apperrors.ErrEducationalLevelNotFound
}

func (f *fakeLevelStore) List(context.Context, dto.EducationalLevelFilter, helpers.PageRequest) ([]*models.EducationalLevel, int64, error) {
	var out []*models.EducationalLevel
	for _, l := range f.levels {
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLevelStore) Update(_ context.Context, l *models.EducationalLevel) error {
	f.levels[l.ID] = l
	return nil
}

func (f *fakeLevelStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.levels[id]; !ok {
		return apperrors.ErrEducationalLevelNotFound
	}
	delete(f.levels, id)
	return nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
}

func (f *fakeCourseStore) Create(_ context.Context, c *models.Course) error {
	c.ID = int64(len(f.courses) + 1)
	f.courses[c.ID] = c
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	if c, ok := f.courses[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.courses[id]
	return ok, nil
}

func (f *fakeCourseStore) List(context.Context, dto.CourseFilter, helpers.PageRequest) ([]*models.Course, int64, error) {
	var out []*models.Course
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCourseStore) Update(_ context.Context, c *models.Course) error {
	f.courses[c.ID] = c
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

type fakeLessonStore struct {
	lessons map[int64]*models.Lesson
}

func (f *fakeLessonStore) Create(_ context.Context, l *models.Lesson) error {
	l.ID = int64(len(f.lessons) + 1)
	f.lessons[l.ID] = l
	return nil
}

func (f *fakeLessonStore) GetByID(_ context.Context, id int64) (*models.Lesson, error) {
	if l, ok := f.lessons[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, apperrors.ErrLessonNotFound
}

func (f *fakeLessonStore) ListByCourse(_ context.Context, courseID int64, page helpers.PageRequest) ([]*models.Lesson, int64, error) {
	var out []*models.Lesson
	for _, l := range f.lessons {
		if l.CourseID == courseID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return paginate(out, page), int64(len(out)), nil
}

func (f *fakeLessonStore) Update(_ context.Context, l *models.Lesson) error {
	f.lessons[l.ID] = l
	return nil
}

func (f *fakeLessonStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.lessons[id]; !ok {
		return apperrors.ErrLessonNotFound
	}
	delete(f.lessons, id)
	return nil
}

type fakeAssessmentStore struct {
	items map[int64]*models.Assessment
}

func (f *fakeAssessmentStore) Create(_ context.Context, a *models.Assessment) error {
	a.ID = int64(len(f.items) + 1)
	a.TotalMarks = 0
	f.items[a.ID] = a
	return nil
}

func (f *fakeAssessmentStore) GetByID(_ context.Context, kind models.AssessmentKind, id int64) (*models.Assessment, error) {
	a, ok := f.items[id]
	if !ok || a.Kind != kind {
		return nil, notFoundFor(kind)
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAssessmentStore) List(_ context.Context, kind models.AssessmentKind, _ dto.AssessmentFilter, _ helpers.PageRequest) ([]*models.Assessment, int64, error) {
	var out []*models.Assessment
	for _, a := range f.items {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAssessmentStore) Update(_ context.Context, a *models.Assessment) error {
	existing, ok := f.items[a.ID]
	if !ok {
		return notFoundFor(a.Kind)
	}
	total := existing.TotalMarks
	cp := *a
	cp.TotalMarks = total
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeAssessmentStore) Delete(_ context.Context, kind models.AssessmentKind, id int64) error {
	if a, ok := f.items[id]; !ok || a.Kind != kind {
		return notFoundFor(kind)
	}
	delete(f.items, id)
	return nil
}

func notFoundFor(kind models.AssessmentKind) error {
	if kind == models.KindAssignment {
		return apperrors.ErrAssignmentNotFound
	}
	return apperrors.ErrExamNotFound
}

// fakeQuestionStore recomputes the owning assessment's total like the SQL repository does
type fakeQuestionStore struct {
	nextID      int64
	questions   map[int64]*models.Question
	assessments *fakeAssessmentStore
}

func (f *fakeQuestionStore) recompute(assessmentID int64) int {
	total := 0
	for _, q := range f.questions {
		if q.ExamID == assessmentID {
			total += q.Marks
		}
	}
	f.assessments.items[assessmentID].TotalMarks = total
	return total
}

func (f *fakeQuestionStore) owner(q *models.Question) error {
	kind := models.KindFromOnModel(q.OnModel)
	a, ok := f.assessments.items[q.ExamID]
	if !ok || a.Kind != kind {
		return notFoundFor(kind)
	}
	return nil
}

func (f *fakeQuestionStore) Create(_ context.Context, q *models.Question) (int, error) {
	if err := f.owner(q); err != nil {
		return 0, err
	}
	f.nextID++
	q.ID = f.nextID
	cp := *q
	f.questions[q.ID] = &cp
	return f.recompute(q.ExamID), nil
}

func (f *fakeQuestionStore) GetByID(_ context.Context, id int64) (*models.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, apperrors.ErrQuestionNotFound
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuestionStore) ListByAssessment(_ context.Context, kind models.AssessmentKind, id int64) ([]*models.Question, error) {
	out := []*models.Question{}
	for _, q := range f.questions {
		if q.ExamID == id && models.KindFromOnModel(q.OnModel) == kind {
			cp := *q
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeQuestionStore) Update(_ context.Context, q *models.Question) (int, error) {
	if _, ok := f.questions[q.ID]; !ok {
		return 0, apperrors.ErrQuestionNotFound
	}
	cp := *q
	f.questions[q.ID] = &cp
	return f.recompute(q.ExamID), nil
}

func (f *fakeQuestionStore) Delete(_ context.Context, q *models.Question) (int, error) {
	if _, ok := f.questions[q.ID]; !ok {
		return 0, apperrors.ErrQuestionNotFound
	}
	delete(f.questions, q.ID)
	return f.recompute(q.ExamID), nil
}

type fakeSubmissionStore struct {
	items []*models.Submission
}

func (f *fakeSubmissionStore) Create(_ context.Context, s *models.Submission) error {
	s.ID = int64(len(f.items) + 1)
	f.items = append(f.items, s)
	return nil
}

func (f *fakeSubmissionStore) LatestByUser(_ context.Context, kind models.AssessmentKind, assessmentID, userID int64) (*models.Submission, error) {
	for i := len(f.items) - 1; i >= 0; i-- {
		s := f.items[i]
		if s.ExamID == assessmentID && s.UserID == userID && models.KindFromOnModel(s.OnModel) == kind {
			return s, nil
		}
	}
	return nil, apperrors.ErrSubmissionNotFound
}

func (f *fakeSubmissionStore) ListByAssessment(_ context.Context, kind models.AssessmentKind, assessmentID int64, page helpers.PageRequest) ([]*models.Submission, int64, error) {
	var out []*models.Submission
	for _, s := range f.items {
		if s.ExamID == assessmentID && models.KindFromOnModel(s.OnModel) == kind {
			out = append(out, s)
		}
	}
	return paginate(out, page), int64(len(out)), nil
}

type fakeSubscriptionStore struct {
	items   map[int64]*models.Subscription
	courses *fakeCourseStore
}

func (f *fakeSubscriptionStore) Create(_ context.Context, s *models.Subscription) error {
	for _, existing := range f.items {
		if existing.UserID == s.UserID && existing.CourseID == s.CourseID {
			return apperrors.ErrAlreadySubscribed
		}
	}
	s.ID = int64(len(f.items) + 1)
	s.SubscribedAt = time.Now()
	cp := *s
	f.items[s.ID] = &cp
	return nil
}

func (f *fakeSubscriptionStore) Exists(_ context.Context, userID, courseID int64) (bool, error) {
	for _, s := range f.items {
		if s.UserID == userID && s.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubscriptionStore) HasActive(_ context.Context, userID, courseID int64, at time.Time) (bool, error) {
	for _, s := range f.items {
		if s.UserID == userID && s.CourseID == courseID && s.IsActiveAt(at) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubscriptionStore) GetByID(_ context.Context, id int64) (*models.Subscription, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrSubscriptionNotFound
	}
	cp := *s
	if f.courses != nil {
		cp.Course = f.courses.courses[s.CourseID]
	}
	return &cp, nil
}

func (f *fakeSubscriptionStore) List(_ context.Context, filter dto.SubscriptionFilter, page helpers.PageRequest) ([]*models.Subscription, int64, error) {
	var out []*models.Subscription
	for _, s := range f.items {
		if filter.UserID != nil && s.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(s.Status) != filter.Status {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return paginate(out, page), int64(len(out)), nil
}

func (f *fakeSubscriptionStore) UpdateStatus(_ context.Context, id int64, status models.SubscriptionStatus, expiresAt *time.Time) error {
	s, ok := f.items[id]
	if !ok {
		return apperrors.ErrSubscriptionNotFound
	}
	s.Status, s.ExpiresAt = status, expiresAt
	return nil
}

type fakeNotificationStore struct {
	items []*models.Notification
}

func (f *fakeNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	return f.CreateMany(ctx, []*models.Notification{n})
}

func (f *fakeNotificationStore) CreateMany(_ context.Context, items []*models.Notification) error {
	for _, n := range items {
		n.ID = int64(len(f.items) + 1)
		n.CreatedAt = time.Now()
		f.items = append(f.items, n)
	}
	return nil
}

func (f *fakeNotificationStore) ListByUser(_ context.Context, userID int64, filter dto.NotificationFilter, page helpers.PageRequest) ([]*models.Notification, int64, error) {
	var out []*models.Notification
	for _, n := range f.items {
		if n.UserID != userID {
			continue
		}
		if filter.Read != nil && n.Read != *filter.Read {
			continue
		}
		if filter.Type != "" && string(n.Type) != filter.Type {
			continue
		}
		out = append(out, n)
	}
	return paginate(out, page), int64(len(out)), nil
}

func (f *fakeNotificationStore) MarkRead(_ context.Context, id, userID int64) (*models.Notification, error) {
	for _, n := range f.items {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return n, nil
		}
	}
	return nil, apperrors.ErrNotificationNotFound
}

func (f *fakeNotificationStore) MarkAllRead(_ context.Context, userID int64) (int64, error) {
	var changed int64
	for _, n := range f.items {
		if n.UserID == userID && !n.Read {
			n.Read = true
			changed++
		}
	}
	return changed, nil
}

func (f *fakeNotificationStore) CountUnread(_ context.Context, userID int64) (int64, error) {
	var n int64
	for _, item := range f.items {
		if item.UserID == userID && !item.Read {
			n++
		}
	}
	return n, nil
}

type pushed struct {
	userID    int64
	eventType string
	data      interface{}
}

type fakePublisher struct {
	events  []pushed
	batches int
}

func (f *fakePublisher) PushToUsers(eventType string, msgs []websocket.Message) int {
	f.batches++
	for _, m := range msgs {
		f.events = append(f.events, pushed{userID: m.UserID, eventType: eventType, data: m.Data})
	}
	return len(msgs)
}

type fakeEvicter struct {
	evicted []int64
}

func (f *fakeEvicter) Delete(_ context.Context, userID int64) {
	f.evicted = append(f.evicted, userID)
}

type fakeNoteStore struct {
	notes  map[int64]*models.Note
	orders []*models.NoteOrder
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{notes: map[int64]*models.Note{}}
}

func (f *fakeNoteStore) Create(_ context.Context, n *models.Note) error {
	n.ID = int64(len(f.notes) + 1)
	cp := *n
	f.notes[n.ID] = &cp
	return nil
}

func (f *fakeNoteStore) GetByID(_ context.Context, id int64) (*models.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, apperrors.ErrNoteNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNoteStore) List(_ context.Context, filter dto.NoteFilter, page helpers.PageRequest) ([]*models.Note, int64, error) {
	var out []*models.Note
	for _, n := range f.notes {
		if filter.Year != "" && n.Year != filter.Year {
			continue
		}
		if filter.IsActive != nil && n.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return paginate(out, page), int64(len(out)), nil
}

func (f *fakeNoteStore) Update(_ context.Context, n *models.Note) error {
	if _, ok := f.notes[n.ID]; !ok {
		return apperrors.ErrNoteNotFound
	}
	cp := *n
	f.notes[n.ID] = &cp
	return nil
}

func (f *fakeNoteStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.notes[id]; !ok {
		return apperrors.ErrNoteNotFound
	}
	delete(f.notes, id)
	kept := f.orders[:0]
	for _, o := range f.orders {
		if o.NoteID != id {
			kept = append(kept, o)
		}
	}
	f.orders = kept
	return nil
}

func (f *fakeNoteStore) CreateOrder(_ context.Context, o *models.NoteOrder) error {
	o.ID = int64(len(f.orders) + 1)
	o.OrderedAt = time.Now()
	cp := *o
	f.orders = append(f.orders, &cp)
	return nil
}

func (f *fakeNoteStore) GetOrderByID(_ context.Context, id int64) (*models.NoteOrder, error) {
	for _, o := range f.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNoteOrderNotFound
}

func (f *fakeNoteStore) ListOrders(_ context.Context, filter dto.NoteOrderFilter, page helpers.PageRequest) ([]*models.NoteOrder, int64, error) {
	var out []*models.NoteOrder
	for _, o := range f.orders {
		if filter.UserID != nil && o.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		out = append(out, o)
	}
	return paginate(out, page), int64(len(out)), nil
}

func (f *fakeNoteStore) UpdateOrderStatus(_ context.Context, id int64, status models.NoteOrderStatus) error {
	for _, o := range f.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return apperrors.ErrNoteOrderNotFound
}
