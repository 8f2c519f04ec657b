package geo

import (
	"math"
	"sync"
	"sync/atomic"
)

// Entry - производная запись индекса близости: активный волонтер
// с известной позицией. Индекс не авторитетен и в любой момент может быть
// восстановлен из LocationStore и VolunteerRegistry.
type Entry struct {
	UserID    string
	Latitude  float64
	Longitude float64
}

// cellKey - ключ ячейки сетки 1°x1°
type cellKey struct {
	lat int
	lon int
}

func cellOf(lat, lon float64) cellKey {
	return cellKey{
		lat: int(math.Floor(lat)),
		lon: normalizeLonCell(int(math.Floor(lon))),
	}
}

// normalizeLonCell приводит ячейку долготы к каноническому диапазону
// [-180, 179]: долгота 180 и обороты через антимеридиан с обеих сторон
// попадают в одну и ту же ячейку
func normalizeLonCell(lonCell int) int {
	return ((lonCell+180)%360+360)%360 - 180
}

// ProximityIndex - сеточный индекс позиций активных волонтеров.
// Мутации идут под мьютексом и инвалидируют снапшот; читатели получают
// иммутабельный снапшот через атомарный указатель и не берут блокировку
// записи. Читатель никогда не видит наполовину примененную запись.
type ProximityIndex struct {
	mu     sync.Mutex
	cells  map[cellKey]map[string]Entry
	byUser map[string]cellKey

	snap atomic.Pointer[Snapshot]
}

// Snapshot - иммутабельный срез индекса на момент времени
type Snapshot struct {
	cells map[cellKey][]Entry
	size  int
}

// NewProximityIndex создает пустой индекс
func NewProximityIndex() *ProximityIndex {
	idx := &ProximityIndex{
		cells:  make(map[cellKey]map[string]Entry),
		byUser: make(map[string]cellKey),
	}
	idx.snap.Store(&Snapshot{cells: map[cellKey][]Entry{}})
	return idx
}

// Upsert добавляет или перемещает запись волонтера
func (idx *ProximityIndex) Upsert(e Entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	key := cellOf(e.Latitude, e.Longitude)
	if old, ok := idx.byUser[e.UserID]; ok && old != key {
		delete(idx.cells[old], e.UserID)
		if len(idx.cells[old]) == 0 {
			delete(idx.cells, old)
		}
	}

	bucket, ok := idx.cells[key]
	if !ok {
		bucket = make(map[string]Entry)
		idx.cells[key] = bucket
	}
	bucket[e.UserID] = e
	idx.byUser[e.UserID] = key

	idx.snap.Store(nil)
}

// Remove удаляет запись волонтера; отсутствие записи не ошибка
func (idx *ProximityIndex) Remove(userID string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	key, ok := idx.byUser[userID]
	if !ok {
		return
	}
	delete(idx.byUser, userID)
	delete(idx.cells[key], userID)
	if len(idx.cells[key]) == 0 {
		delete(idx.cells, key)
	}

	idx.snap.Store(nil)
}

// Snapshot возвращает консистентный срез индекса. Действующий снапшот
// переиспользуется без блокировки; после мутации он перестраивается один
// раз при первом обращении.
func (idx *ProximityIndex) Snapshot() *Snapshot {
	if s := idx.snap.Load(); s != nil {
		return s
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	// Повторная проверка: снапшот мог собрать конкурирующий читатель
	if s := idx.snap.Load(); s != nil {
		return s
	}

	s := &Snapshot{cells: make(map[cellKey][]Entry, len(idx.cells))}
	for key, bucket := range idx.cells {
		entries := make([]Entry, 0, len(bucket))
		for _, e := range bucket {
			entries = append(entries, e)
		}
		s.cells[key] = entries
		s.size += len(entries)
	}
	idx.snap.Store(s)
	return s
}

// Size возвращает число записей в снапшоте
func (s *Snapshot) Size() int {
	return s.size
}

// Candidates возвращает записи из ячеек, пересекающих ограничивающий
// прямоугольник вокруг центра. Это грубый префильтр: точная дистанция
// считается вызывающей стороной. Диапазон долгот может оборачиваться
// через антимеридиан; вблизи полюсов сканируется вся широтная полоса.
func (s *Snapshot) Candidates(centerLat, centerLon, radiusKm float64) []Entry {
	// 1 градус широты ~ 111.19 км (EarthRadiusKm * pi / 180)
	kmPerDegLat := EarthRadiusKm * math.Pi / 180

	latDelta := radiusKm / kmPerDegLat
	minLat := centerLat - latDelta
	maxLat := centerLat + latDelta
	if minLat < -90 {
		minLat = -90
	}
	if maxLat > 90 {
		maxLat = 90
	}

	// Сужение ячейки по долготе растет к полюсам; берем худший случай
	// в пределах широтной полосы
	worstLat := math.Max(math.Abs(minLat), math.Abs(maxLat))
	cosLat := math.Cos(worstLat * math.Pi / 180)

	allLon := false
	var lonDelta float64
	if cosLat*kmPerDegLat < 1e-9 {
		allLon = true
	} else {
		lonDelta = radiusKm / (kmPerDegLat * cosLat)
		if lonDelta >= 180 {
			allLon = true
		}
	}

	var out []Entry
	for latCell := int(math.Floor(minLat)); latCell <= int(math.Floor(maxLat)); latCell++ {
		if allLon {
			for lonCell := -180; lonCell <= 179; lonCell++ {
				out = append(out, s.cells[cellKey{lat: latCell, lon: lonCell}]...)
			}
			continue
		}

		minLon := centerLon - lonDelta
		maxLon := centerLon + lonDelta
		for lonCell := int(math.Floor(minLon)); lonCell <= int(math.Floor(maxLon)); lonCell++ {
			// Сканируемая ячейка приводится к тому же каноническому
			// диапазону, что и ключи индекса
			out = append(out, s.cells[cellKey{lat: latCell, lon: normalizeLonCell(lonCell)}]...)
		}
	}
	return out
}
