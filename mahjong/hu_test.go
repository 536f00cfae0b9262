package mahjong_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_xzdd/mahjong"
)

func mustVector(t *testing.T, names string) mahjong.TileVector {
	t.Helper()
	tiles, err := mahjong.ParseTiles(names)
	if err != nil {
		t.Fatalf("ParseTiles(%q): %v", names, err)
	}
	v, err := mahjong.TileVectorFromTiles(tiles)
	if err != nil {
		t.Fatalf("TileVectorFromTiles(%q): %v", names, err)
	}
	return v
}

type huCase struct {
	tiles string
	want  bool
}

func Test_CheckHu(t *testing.T) {
	testCases := []huCase{
		{
			// 平胡：4面子+将
			tiles: "1万,2万,3万,4万,5万,6万,7万,8万,9万,5条,5条,5条,1筒,1筒",
			want:  true,
		},
		{
			// 碰碰胡形
			tiles: "1万,1万,1万,2万,2万,2万,3条,3条,3条,9筒,9筒,9筒,5筒,5筒",
			want:  true,
		},
		{
			// 七小对
			tiles: "1万,1万,3万,3万,5万,5万,7万,7万,2条,2条,4条,4条,9筒,9筒",
			want:  true,
		},
		{
			// 龙七对：四张算两对
			tiles: "1万,1万,1万,1万,3万,3万,5万,5万,2条,2条,4条,4条,9筒,9筒",
			want:  true,
		},
		{
			// 叫牌但未胡
			tiles: "1万,2万,3万,4万,5万,6万,7万,8万,9万,5条,5条,5条,1筒,2筒",
			want:  false,
		},
		{
			// 六对+两散牌
			tiles: "1万,1万,3万,3万,5万,5万,7万,7万,2条,2条,4条,4条,8筒,9筒",
			want:  false,
		},
		{
			// 三张一对在七对方向上不成立，平胡方向也拆不开
			tiles: "1万,1万,1万,3万,3万,5万,5万,7万,7万,9万,9万,2条,2条,4条",
			want:  false,
		},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			v := mustVector(t, tc.tiles)
			got, err := mahjong.CheckHu(v)
			if err != nil {
				t.Fatalf("CheckHu(%s): %v", tc.tiles, err)
			}
			if got != tc.want {
				t.Errorf("CheckHu(%s) = %v, want %v", tc.tiles, got, tc.want)
			}
		})
	}
}

func Test_CheckHu_InvalidInput(t *testing.T) {
	// 13张走胡牌判定
	v := mustVector(t, "1万,2万,3万,4万,5万,6万,7万,8万,9万,5条,5条,5条,1筒")
	if _, err := mahjong.CheckHu(v); !errors.Is(err, mahjong.ErrInvalidHandSize) {
		t.Errorf("CheckHu with 13 tiles: err = %v, want ErrInvalidHandSize", err)
	}

	// 某格超过4张
	var bad mahjong.TileVector
	bad[0] = 5
	bad[1] = 3
	bad[2] = 3
	bad[3] = 3
	if _, err := mahjong.CheckHu(bad); !errors.Is(err, mahjong.ErrInvalidTileCount) {
		t.Errorf("CheckHu with 5 copies: err = %v, want ErrInvalidTileCount", err)
	}
}

func Test_CheckHu_Idempotent(t *testing.T) {
	v := mustVector(t, "1万,2万,3万,4万,5万,6万,7万,8万,9万,5条,5条,5条,1筒,1筒")
	first, err := mahjong.CheckHu(v)
	if err != nil {
		t.Fatal(err)
	}
	second, err := mahjong.CheckHu(v)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("CheckHu not idempotent: %v then %v", first, second)
	}
	if v != mustVector(t, "1万,2万,3万,4万,5万,6万,7万,8万,9万,5条,5条,5条,1筒,1筒") {
		t.Error("CheckHu mutated its input")
	}
}
