package store

import "sync"

// RefreshNotifier сигнал инвалидации для зависимых экранов.
// Каждый Trigger поднимает монотонное поколение и будит подписчиков;
// экран перед загрузкой снимает Latest, а применяет ответ только если
// поколение всё ещё последнее. Так поздно пришедший устаревший ответ
// отбрасывается вместо молчаливой перезаписи свежего.
type RefreshNotifier struct {
	mu         sync.Mutex
	generation uint64
	subs       map[int]chan uint64
	nextSubID  int
}

func NewRefreshNotifier() *RefreshNotifier {
	return &RefreshNotifier{subs: make(map[int]chan uint64)}
}

// Trigger бампает поколение и уведомляет подписчиков без блокировки:
// переполненный канал пропускает сигнал, подписчик догонит по Latest
func (n *RefreshNotifier) Trigger() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.generation++
	for _, ch := range n.subs {
		select {
		case ch <- n.generation:
		default:
		}
	}
	return n.generation
}

// Latest текущее поколение
func (n *RefreshNotifier) Latest() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.generation
}

// IsCurrent применим ли ответ запроса, снятого на поколении gen
func (n *RefreshNotifier) IsCurrent(gen uint64) bool {
	return n.Latest() == gen
}

// Subscribe возвращает канал поколений и функцию отписки
func (n *RefreshNotifier) Subscribe() (<-chan uint64, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextSubID
	n.nextSubID++
	ch := make(chan uint64, 1)
	n.subs[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
	return ch, cancel
}
