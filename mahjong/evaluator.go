package mahjong

import "sync"

// Evaluator 在纯函数之上加一层记忆化，反复评估同一批手牌（比如AI选打）时复用结果。
// 缓存用读写锁保护，可以并发使用；不需要复用结果时直接调包级函数即可。
type Evaluator struct {
	mu           sync.RWMutex
	shantenCache map[string]int
	huCache      map[string]bool
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		shantenCache: make(map[string]int, 4096),
		huCache:      make(map[string]bool, 4096),
	}
}

// CheckHu 同mahjong.CheckHu，带缓存。
func (e *Evaluator) CheckHu(v TileVector) (bool, error) {
	if err := v.checkHand(TileCountInitBanker); err != nil {
		return false, err
	}

	key := v.cacheKey()
	e.mu.RLock()
	if hu, ok := e.huCache[key]; ok {
		e.mu.RUnlock()
		return hu, nil
	}
	e.mu.RUnlock()

	hu := checkStandardHu(v) || checkSevenPairs(v)
	e.mu.Lock()
	e.huCache[key] = hu
	e.mu.Unlock()
	return hu, nil
}

// CalcShanten 同mahjong.CalcShanten，带缓存。
func (e *Evaluator) CalcShanten(v TileVector) (int, error) {
	if err := v.checkHand(TileCountInitNormal); err != nil {
		return 0, err
	}
	return e.shantenAny(v), nil
}

// CalcUkeire 同mahjong.CalcUkeire，模拟摸牌后的14张评估走共享缓存。
func (e *Evaluator) CalcUkeire(v TileVector) (UkeireSet, error) {
	if err := v.checkHand(TileCountInitNormal); err != nil {
		return nil, err
	}

	baseline := e.shantenAny(v)
	res := make(UkeireSet)
	for i := range v {
		if int(v[i]) >= SameTileCount {
			continue
		}
		v[i]++
		step := e.shantenAny(v)
		v[i]--
		if step < baseline {
			res[Tile(i)] = SameTileCount - int(v[i])
		}
	}
	return res, nil
}

// BestDiscards 同mahjong.BestDiscards，带缓存。
func (e *Evaluator) BestDiscards(v TileVector) ([]DiscardAdvice, error) {
	if err := v.checkHand(TileCountInitBanker); err != nil {
		return nil, err
	}

	res := make([]DiscardAdvice, 0, TileKindCount)
	for i := range v {
		if v[i] == 0 {
			continue
		}
		v[i]--
		step := e.shantenAny(v)
		ukeire, err := e.CalcUkeire(v)
		v[i]++
		if err != nil {
			return nil, err
		}
		res = append(res, DiscardAdvice{
			Tile:        Tile(i),
			Shanten:     step,
			Ukeire:      ukeire,
			UkeireTotal: ukeire.Total(),
		})
	}
	sortAdvices(res)
	return res, nil
}

func (e *Evaluator) shantenAny(v TileVector) int {
	key := v.cacheKey()
	e.mu.RLock()
	if step, ok := e.shantenCache[key]; ok {
		e.mu.RUnlock()
		return step
	}
	e.mu.RUnlock()

	step := calcShantenAny(v)
	e.mu.Lock()
	e.shantenCache[key] = step
	e.mu.Unlock()
	return step
}
