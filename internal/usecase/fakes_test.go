package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareheart/internal/domain/entity"
	ws "shareheart/internal/infrastructure/websocket"
	"shareheart/pkg/errors"
)

// memStore backs the in-memory repositories used by the usecase tests. It
// keeps the same invariants the Firestore repositories enforce in their
// transactions.
type memStore struct {
	mu sync.Mutex

	users         map[string]*entity.User
	items         map[string]*entity.Item
	postings      map[string]*entity.Posting
	itemRequests  map[string]*entity.ItemRequest
	conversations map[string]*entity.Conversation
	messages      map[string][]*entity.Message
	notifications map[string]*entity.Notification
	transactions  []*entity.Transaction
	favorites     map[string]*entity.Favorite
	reviews       []*entity.Review
	banners       map[string]*entity.Banner

	seq   int
	clock time.Time

	failAppend       error
	failDecide       error
	failNotification error
}

func newMemStore() *memStore {
	return &memStore{
		users:         map[string]*entity.User{},
		items:         map[string]*entity.Item{},
		postings:      map[string]*entity.Posting{},
		itemRequests:  map[string]*entity.ItemRequest{},
		conversations: map[string]*entity.Conversation{},
		messages:      map[string][]*entity.Message{},
		notifications: map[string]*entity.Notification{},
		favorites:     map[string]*entity.Favorite{},
		banners:       map[string]*entity.Banner{},
		clock:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

// now advances a fake clock so timestamps are strictly increasing.
func (s *memStore) now() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) addUser(id string, points int) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &entity.User{ID: id, FirstName: strings.ToUpper(id[:1]) + id[1:], Points: points}
	s.users[id] = u
	return u
}

func (s *memStore) addItem(id, ownerID string) *entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := &entity.Item{ID: id, UserID: ownerID, Title: "Item " + id, Type: entity.ListingTypeDonate, Status: entity.ItemStatusAvailable, CreatedAt: s.now()}
	s.items[id] = it
	return it
}

func (s *memStore) addConversation(id, p1, p2 string) *entity.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	c := &entity.Conversation{ID: id, Participant1ID: p1, Participant2ID: p2, Participants: []string{p1, p2}, CreatedAt: now, UpdatedAt: now}
	s.conversations[id] = c
	return c
}

func (s *memStore) notificationsFor(userID string) []*entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// users

type fakeUserRepo struct{ s *memStore }

func (r fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *u
	return &cp, nil
}

func (r fakeUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[string]*entity.User{}
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			cp := *u
			out[id] = &cp
		}
	}
	return out, nil
}

func (r fakeUserRepo) CreateWithBonus(ctx context.Context, user *entity.User, bonus *entity.Transaction) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[user.ID]; ok {
		cp := *u
		return &cp, nil
	}
	now := r.s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	if bonus != nil {
		bonus.ID = r.s.nextID("txn")
		bonus.UserID = user.ID
		bonus.CreatedAt = now
		user.Points = bonus.Delta()
		r.s.transactions = append(r.s.transactions, bonus)
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return user, nil
}

func (r fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

// items

type fakeItemRepo struct{ s *memStore }

func (r fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = r.s.nextID("item")
	item.CreatedAt = r.s.now()
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r fakeItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, errors.NotFound("Item", nil)
	}
	cp := *it
	return &cp, nil
}

func (r fakeItemRepo) List(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Item
	for _, it := range r.s.items {
		if filter.Category != "" && it.Category != filter.Category {
			continue
		}
		if filter.Type != "" && it.Type != filter.Type {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r fakeItemRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Item
	for _, it := range r.s.items {
		if it.UserID == userID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakeItemRepo) Update(ctx context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r fakeItemRepo) IncrementViews(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return errors.NotFound("Item", nil)
	}
	it.ViewCount++
	return nil
}

func (r fakeItemRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}

// postings

type fakePostingRepo struct{ s *memStore }

func (r fakePostingRepo) Create(ctx context.Context, p *entity.Posting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.nextID("posting")
	p.CreatedAt = r.s.now()
	cp := *p
	r.s.postings[p.ID] = &cp
	return nil
}

func (r fakePostingRepo) GetByID(ctx context.Context, id string) (*entity.Posting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.postings[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}
	cp := *p
	return &cp, nil
}

func (r fakePostingRepo) List(ctx context.Context, filter entity.ItemFilter) ([]*entity.Posting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Posting
	for _, p := range r.s.postings {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r fakePostingRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Posting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Posting
	for _, p := range r.s.postings {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakePostingRepo) Update(ctx context.Context, p *entity.Posting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.postings[p.ID] = &cp
	return nil
}

// item requests

type fakeItemRequestRepo struct{ s *memStore }

func (r fakeItemRequestRepo) Create(ctx context.Context, req *entity.ItemRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.itemRequests {
		if existing.ItemID == req.ItemID && existing.RequesterID == req.RequesterID && existing.Status == entity.ItemRequestPending {
			return errors.Conflict("You already have a pending request for this item")
		}
	}
	req.ID = r.s.nextID("ir")
	req.Status = entity.ItemRequestPending
	now := r.s.now()
	req.CreatedAt, req.UpdatedAt = now, now
	cp := *req
	r.s.itemRequests[req.ID] = &cp
	return nil
}

func (r fakeItemRequestRepo) GetByID(ctx context.Context, id string) (*entity.ItemRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.itemRequests[id]
	if !ok {
		return nil, errors.NotFound("Item request", nil)
	}
	cp := *req
	return &cp, nil
}

func (r fakeItemRequestRepo) ListByItemIDs(ctx context.Context, itemIDs []string) ([]*entity.ItemRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := map[string]bool{}
	for _, id := range itemIDs {
		want[id] = true
	}
	var out []*entity.ItemRequest
	for _, req := range r.s.itemRequests {
		if want[req.ItemID] {
			cp := *req
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r fakeItemRequestRepo) ListByRequester(ctx context.Context, requesterID, status string) ([]*entity.ItemRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ItemRequest
	for _, req := range r.s.itemRequests {
		if req.RequesterID == requesterID && (status == "" || req.Status == status) {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Decide mirrors the Firestore transaction: nothing is written unless every
// check passes and the conversation can be created.
func (r fakeItemRequestRepo) Decide(ctx context.Context, id, ownerID, status string, conv *entity.Conversation) (*entity.ItemRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.itemRequests[id]
	if !ok {
		return nil, errors.NotFound("Item request", nil)
	}
	item, ok := r.s.items[req.ItemID]
	if !ok {
		return nil, errors.NotFound("Item", nil)
	}
	if item.UserID != ownerID {
		return nil, errors.Forbidden("Only the item owner can decide on this request", nil)
	}
	if req.Status != entity.ItemRequestPending {
		return nil, errors.Conflict("Item request is already " + req.Status)
	}
	if r.s.failDecide != nil {
		return nil, errors.Internal("Failed to update item request status", r.s.failDecide)
	}

	now := r.s.now()
	if conv != nil {
		conv.ID = r.s.nextID("conv")
		conv.ItemID = item.ID
		conv.ItemRequestID = req.ID
		conv.Participant1ID = item.UserID
		conv.Participant2ID = req.RequesterID
		conv.Participants = []string{item.UserID, req.RequesterID}
		conv.CreatedAt, conv.UpdatedAt = now, now
		cp := *conv
		r.s.conversations[conv.ID] = &cp
	}
	req.Status = status
	req.UpdatedAt = now
	cp := *req
	return &cp, nil
}

// chat

type fakeChatRepo struct{ s *memStore }

func (r fakeChatRepo) GetConversation(ctx context.Context, id string) (*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	cp := *c
	return &cp, nil
}

func (r fakeChatRepo) ListConversations(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Conversation
	for _, c := range r.s.conversations {
		if c.HasParticipant(userID) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r fakeChatRepo) AppendMessage(ctx context.Context, msg *entity.Message) (*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failAppend != nil {
		return nil, errors.Internal("Failed to create message", r.s.failAppend)
	}
	c, ok := r.s.conversations[msg.ConversationID]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	now := r.s.now()
	if now.Before(c.UpdatedAt) {
		now = c.UpdatedAt
	}
	msg.ID = r.s.nextID("msg")
	msg.CreatedAt = now
	c.UpdatedAt = now
	cp := *msg
	r.s.messages[c.ID] = append(r.s.messages[c.ID], &cp)
	conv := *c
	return &conv, nil
}

func (r fakeChatRepo) GetMessage(ctx context.Context, conversationID, messageID string) (*entity.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.messages[conversationID] {
		if m.ID == messageID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Message", nil)
}

func (r fakeChatRepo) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Message{}
	for _, m := range r.s.messages[conversationID] {
		if !m.IsDeleted {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakeChatRepo) MarkMessageDeleted(ctx context.Context, conversationID, messageID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.messages[conversationID] {
		if m.ID == messageID {
			m.IsDeleted = true
			return nil
		}
	}
	return errors.NotFound("Message", nil)
}

// notifications

type fakeNotificationRepo struct{ s *memStore }

func (r fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failNotification != nil {
		return errors.Internal("Failed to create notification", r.s.failNotification)
	}
	n.ID = r.s.nextID("notif")
	n.CreatedAt = r.s.now()
	cp := *n
	r.s.notifications[n.ID] = &cp
	return nil
}

func (r fakeNotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return nil, errors.NotFound("Notification", nil)
	}
	cp := *n
	return &cp, nil
}

func (r fakeNotificationRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	all := r.s.notificationsFor(userID)
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return []*entity.Notification{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r fakeNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	var n int64
	for _, notif := range r.s.notificationsFor(userID) {
		if !notif.IsRead {
			n++
		}
	}
	return n, nil
}

func (r fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	n.IsRead = true
	return nil
}

func (r fakeNotificationRepo) MarkAllRead(ctx context.Context, userID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, n := range r.s.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			count++
		}
	}
	return count, nil
}

// transactions

type fakeTransactionRepo struct{ s *memStore }

func (r fakeTransactionRepo) Append(ctx context.Context, txn *entity.Transaction) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[txn.UserID]
	if !ok {
		return 0, errors.NotFound("User", nil)
	}
	balance := u.Points + txn.Delta()
	if balance < 0 {
		return 0, errors.Conflict("Insufficient points")
	}
	txn.ID = r.s.nextID("txn")
	txn.CreatedAt = r.s.now()
	u.Points = balance
	r.s.transactions = append(r.s.transactions, txn)
	return balance, nil
}

func (r fakeTransactionRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Transaction
	for _, t := range r.s.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// favorites

type fakeFavoriteRepo struct{ s *memStore }

func (r fakeFavoriteRepo) Find(ctx context.Context, userID, itemID, requestID string) (*entity.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.favorites {
		if f.UserID == userID && f.ItemID == itemID && f.RequestID == requestID {
			return f, nil
		}
	}
	return nil, nil
}

func (r fakeFavoriteRepo) Create(ctx context.Context, f *entity.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f.ID = r.s.nextID("fav")
	f.CreatedAt = r.s.now()
	r.s.favorites[f.ID] = f
	return nil
}

func (r fakeFavoriteRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.favorites, id)
	return nil
}

func (r fakeFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Favorite
	for _, f := range r.s.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

// reviews

type fakeReviewRepo struct{ s *memStore }

func (r fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if review.Type == entity.ReviewTypeItem {
		it, ok := r.s.items[review.ItemID]
		if !ok {
			return errors.NotFound("Item", nil)
		}
		it.Rating, it.TotalReviews = entity.ApplyRating(it.Rating, it.TotalReviews, review.Rating)
	} else {
		u, ok := r.s.users[review.RevieweeID]
		if !ok {
			return errors.NotFound("User", nil)
		}
		u.Rating, u.TotalReviews = entity.ApplyRating(u.Rating, u.TotalReviews, review.Rating)
	}
	review.ID = r.s.nextID("review")
	review.CreatedAt = r.s.now()
	r.s.reviews = append(r.s.reviews, review)
	return nil
}

func (r fakeReviewRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Review
	for _, rv := range r.s.reviews {
		if rv.Type == entity.ReviewTypeItem && rv.ItemID == itemID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r fakeReviewRepo) ListByReviewee(ctx context.Context, userID string) ([]*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Review
	for _, rv := range r.s.reviews {
		if rv.RevieweeID == userID {
			out = append(out, rv)
		}
	}
	return out, nil
}

// banners

type fakeBannerRepo struct{ s *memStore }

func (r fakeBannerRepo) Create(ctx context.Context, b *entity.Banner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.ID = r.s.nextID("banner")
	b.CreatedAt = r.s.now()
	cp := *b
	r.s.banners[b.ID] = &cp
	return nil
}

func (r fakeBannerRepo) GetByID(ctx context.Context, id string) (*entity.Banner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.banners[id]
	if !ok {
		return nil, errors.NotFound("Banner", nil)
	}
	cp := *b
	return &cp, nil
}

func (r fakeBannerRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Banner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Banner
	for _, b := range r.s.banners {
		if !activeOnly || b.IsActive {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakeBannerRepo) Update(ctx context.Context, b *entity.Banner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *b
	r.s.banners[b.ID] = &cp
	return nil
}

// publisher

type sentFrame struct {
	target string
	frame  *ws.Frame
}

// fakePublisher records frames. subscribers maps a conversation id to the
// users whose connections joined it.
type fakePublisher struct {
	mu          sync.Mutex
	subscribers map[string][]string
	published   []sentFrame
	direct      []sentFrame
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{subscribers: map[string][]string{}}
}

func (p *fakePublisher) PublishToConversation(conversationID string, frame *ws.Frame) map[string]bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, sentFrame{target: conversationID, frame: frame})
	reached := map[string]bool{}
	for _, u := range p.subscribers[conversationID] {
		reached[u] = true
	}
	return reached
}

func (p *fakePublisher) SendToUser(userID string, frame *ws.Frame) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.direct = append(p.direct, sentFrame{target: userID, frame: frame})
	return true
}

func (p *fakePublisher) directTo(userID, frameType string) []*ws.Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*ws.Frame
	for _, f := range p.direct {
		if f.target == userID && f.frame.Type == frameType {
			out = append(out, f.frame)
		}
	}
	return out
}

type denyLimiter struct{}

func (denyLimiter) Allow(string, string) (bool, time.Duration) { return false, time.Second }

type testEnv struct {
	store *memStore
	pub   *fakePublisher

	notifications *NotificationUseCase
	users         *UserUseCase
	items         *ItemUseCase
	postings      *PostingUseCase
	requests      *ItemRequestUseCase
	chat          *ChatUseCase
	wallet        *WalletUseCase
	favorites     *FavoriteUseCase
	reviews       *ReviewUseCase
	banners       *BannerUseCase
}

func newTestEnv() *testEnv {
	s := newMemStore()
	pub := newFakePublisher()
	notifications := NewNotificationUseCase(fakeNotificationRepo{s}, pub)

	return &testEnv{
		store:         s,
		pub:           pub,
		notifications: notifications,
		users:         NewUserUseCase(fakeUserRepo{s}, 300),
		items:         NewItemUseCase(fakeItemRepo{s}, notifications),
		postings:      NewPostingUseCase(fakePostingRepo{s}),
		requests:      NewItemRequestUseCase(fakeItemRequestRepo{s}, fakeItemRepo{s}, notifications),
		chat:          NewChatUseCase(fakeChatRepo{s}, fakeItemRepo{s}, fakeUserRepo{s}, pub, nil, 20),
		wallet:        NewWalletUseCase(fakeTransactionRepo{s}, notifications),
		favorites:     NewFavoriteUseCase(fakeFavoriteRepo{s}, fakeItemRepo{s}, fakePostingRepo{s}),
		reviews:       NewReviewUseCase(fakeReviewRepo{s}, fakeItemRepo{s}, fakeUserRepo{s}),
		banners:       NewBannerUseCase(fakeBannerRepo{s}),
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, code), "expected %s, got %v", code, err)
}
