// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/json"
	"sync"
	"testing"

	dbm "github.com/33cn/redvsblue/common/db"
	execs "github.com/33cn/redvsblue/executor"
	pty "github.com/33cn/redvsblue/plugin/dapp/redvsblue/types"
	"github.com/33cn/redvsblue/system/dapp"
	"github.com/33cn/redvsblue/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "1HTnL9jzKFTfGt5D7iwUTsnMhPuzPBSZyN"
	bob   = "19D64ZBEi7ZvGCjsdjZPH1sUwXQKHyRe97"
	carol = "1NWrf17pmv1efkJn9vNXSo8GFp9ZJixAbm"
	dave  = "1JaF4zkRCdZxUrytb452XoVSCnHq1B2mJ1"
)

var (
	initOnce sync.Once
	players  = []string{alice, bob, carol, dave}
)

type testEnv struct {
	t    *testing.T
	exec *execs.Executor
	db   dbm.DB
}

func newTestEnv(t *testing.T, sub string) *testEnv {
	initOnce.Do(func() {
		Init(pty.RedVsBlueX, nil)
	})
	db, err := dbm.NewGoMemDB("redvsblue", "", 16)
	require.NoError(t, err)
	var subs map[string][]byte
	if sub != "" {
		subs = map[string][]byte{pty.RedVsBlueX: []byte(sub)}
	}
	exec, err := execs.New(&types.Exec{StateCacheSize: 64}, subs, db)
	require.NoError(t, err)
	return &testEnv{t: t, exec: exec, db: db}
}

func (env *testEnv) createTx(from, action string, param interface{}) *types.Transaction {
	data, err := json.Marshal(param)
	require.NoError(env.t, err)
	tx, err := executorType.CreateTx(from, action, data)
	require.NoError(env.t, err)
	return tx
}

func (env *testEnv) send(tx *types.Transaction) *types.TxDetail {
	detail, err := env.exec.ExecTx(tx)
	require.NoError(env.t, err)
	return detail
}

func (env *testEnv) buy(from, value string) *types.TxDetail {
	tx := env.createTx(from, "BuyCredits", &pty.BuyCredits{})
	tx.Value = value
	return env.send(tx)
}

func (env *testEnv) vote(from string, amount int64, side int32) *types.TxDetail {
	return env.send(env.createTx(from, "CastVote", &pty.CastVote{Amount: amount, Side: side}))
}

func (env *testEnv) claim(from string, round int64) *types.TxDetail {
	return env.send(env.createTx(from, "ClaimEarnings", &pty.ClaimEarnings{Round: round}))
}

func (env *testEnv) withdraw(from string, amount int64) *types.TxDetail {
	return env.send(env.createTx(from, "WithdrawCredits", &pty.WithdrawCredits{Amount: amount}))
}

func (env *testEnv) mineTo(height int64) {
	for env.exec.Height() < height {
		_, err := env.exec.Mine()
		require.NoError(env.t, err)
	}
}

func (env *testEnv) query(funcName string, param interface{}) types.Message {
	data, err := json.Marshal(param)
	require.NoError(env.t, err)
	reply, err := env.exec.Query(pty.RedVsBlueX, funcName, data)
	require.NoError(env.t, err)
	return reply
}

func (env *testEnv) balance(addr string) int64 {
	return env.query("GetCreditBalance", &types.ReqAddr{Addr: addr}).(*pty.ReplyCreditBalance).Balance
}

func (env *testEnv) earnings(round int64, addr string) *pty.ReplyEarnings {
	return env.query("GetEarnings", &pty.ReqEarnings{Round: round, Addr: addr}).(*pty.ReplyEarnings)
}

func (env *testEnv) totals(round int64) *pty.ReplyGameTotals {
	return env.query("GetGameTotals", &pty.ReqRound{Round: round}).(*pty.ReplyGameTotals)
}

func (env *testEnv) supply() *pty.ReplyTotalCredits {
	return env.query("GetTotalCredits", &types.ReqNil{}).(*pty.ReplyTotalCredits)
}

//所有余额之和等于 credit 总量
func (env *testEnv) checkConservation() {
	total := env.supply()
	owner := env.query("GetOwnerAddress", &types.ReqNil{}).(*types.ReplyString).Data
	sum := total.Pool
	for _, addr := range players {
		if addr != owner {
			sum += env.balance(addr)
		}
	}
	sum += total.Owner
	assert.Equal(env.t, total.Supply, sum)
}

func execErr(t *testing.T, detail *types.TxDetail) string {
	require.Equal(t, int32(types.ExecErr), detail.Receipt.Ty)
	require.Len(t, detail.Receipt.Logs, 1)
	return string(detail.Receipt.Logs[0].Log)
}

func findLog(t *testing.T, detail *types.TxDetail, ty int32) interface{} {
	for _, l := range detail.Receipt.Logs {
		if l.Ty == ty {
			v, err := executorType.DecodeLog(ty, l.Log)
			require.NoError(t, err)
			return v
		}
	}
	t.Fatalf("log %d not found", ty)
	return nil
}

func TestGameScenario(t *testing.T) {
	env := newTestEnv(t, "")
	for _, addr := range players {
		detail := env.buy(addr, "1")
		require.Equal(t, int32(types.ExecOk), detail.Receipt.Ty)
		assert.Equal(t, int64(1000), env.balance(addr))
	}
	current := env.query("GetCurrentRound", &types.ReqNil{}).(*pty.ReplyCurrentRound)
	assert.Equal(t, int64(0), current.Round)
	assert.Equal(t, int64(4), current.Height)
	assert.Equal(t, int64(127), current.EndHeight)

	env.vote(alice, 100, pty.SideRed)
	env.vote(bob, 100, pty.SideRed)
	detail := env.vote(carol, 100, pty.SideBlue)
	require.Equal(t, int32(types.ExecOk), detail.Receipt.Ty)
	vlog := findLog(t, detail, pty.TyLogRedVsBlueCastVote).(*pty.ReceiptCastVote)
	assert.Equal(t, int64(100), vlog.SideTotal)
	assert.Equal(t, int64(900), vlog.Balance)

	assert.Equal(t, &pty.ReplyGameTotals{Round: 0, Red: 200, Blue: 100}, env.totals(0))
	//轮次没有结束, 收益为 0
	assert.Equal(t, int64(0), env.earnings(0, alice).Earned)
	assert.Equal(t, int64(100), env.earnings(0, alice).Spent)
	env.checkConservation()

	env.mineTo(128)
	info := env.query("GetRoundInfo", &pty.ReqRound{Round: 0}).(*pty.ReplyRoundInfo)
	assert.True(t, info.Closed)

	assert.Equal(t, &pty.ReplyEarnings{Round: 0, Addr: carol, Earned: 0, Spent: 100}, env.earnings(0, carol))
	assert.Equal(t, &pty.ReplyEarnings{Round: 0, Addr: alice, Earned: 150, Spent: 100}, env.earnings(0, alice))

	detail = env.claim(alice, 0)
	require.Equal(t, int32(types.ExecOk), detail.Receipt.Ty)
	clog := findLog(t, detail, pty.TyLogRedVsBlueClaimEarnings).(*pty.ReceiptClaimEarnings)
	assert.Equal(t, int64(150), clog.Earned)
	assert.Equal(t, int64(1050), clog.Balance)
	env.claim(bob, 0)
	assert.Equal(t, int64(1050), env.balance(alice))
	assert.Equal(t, int64(1050), env.balance(bob))
	assert.Equal(t, int64(900), env.balance(carol))
	assert.Equal(t, int64(1000), env.balance(dave))

	owner := env.query("GetOwnerAddress", &types.ReqNil{}).(*types.ReplyString).Data
	assert.Equal(t, "18hG8ZKL7PBCFjDK3FBYEoexroS8rFgkcS", owner)
	assert.Equal(t, int64(0), env.balance(owner))

	total := env.supply()
	assert.Equal(t, int64(4000), total.Supply)
	assert.Equal(t, int64(0), total.Pool)
	assert.True(t, env.earnings(0, alice).Claimed)
	env.checkConservation()
}

func TestClaimOnce(t *testing.T) {
	env := newTestEnv(t, `{"windowSize":16}`)
	env.buy(alice, "1")
	env.buy(carol, "1")
	env.vote(alice, 100, pty.SideRed)
	env.vote(carol, 50, pty.SideBlue)

	//当前轮次不能领取
	assert.Equal(t, pty.ErrRoundNotClosed.Error(), execErr(t, env.claim(alice, 0)))
	assert.Equal(t, pty.ErrRoundNotClosed.Error(), execErr(t, env.claim(alice, 3)))

	env.mineTo(16)
	require.Equal(t, int32(types.ExecOk), env.claim(alice, 0).Receipt.Ty)
	assert.Equal(t, int64(1050), env.balance(alice))

	height := env.exec.Height()
	assert.Equal(t, pty.ErrAlreadyClaimed.Error(), execErr(t, env.claim(alice, 0)))
	assert.Equal(t, height+1, env.exec.Height())
	assert.Equal(t, int64(1050), env.balance(alice))

	//输的一方领取 0, 之后同样不能再领取
	require.Equal(t, int32(types.ExecOk), env.claim(carol, 0).Receipt.Ty)
	assert.Equal(t, int64(950), env.balance(carol))
	assert.Equal(t, pty.ErrAlreadyClaimed.Error(), execErr(t, env.claim(carol, 0)))

	assert.Equal(t, types.ErrInvalidParam.Error(), execErr(t, env.claim(carol, -1)))
	env.checkConservation()
}

func TestFailedTxKeepsState(t *testing.T) {
	env := newTestEnv(t, "")
	env.buy(alice, "0.5")
	assert.Equal(t, int64(500), env.balance(alice))

	detail := env.withdraw(alice, 501)
	assert.Equal(t, types.ErrInsufficientCredits.Error(), execErr(t, detail))
	assert.Equal(t, int64(2), detail.Height)
	assert.Equal(t, int64(500), env.balance(alice))

	assert.Equal(t, types.ErrAmount.Error(), execErr(t, env.withdraw(alice, 0)))
	assert.Equal(t, types.ErrInsufficientCredits.Error(), execErr(t, env.vote(alice, 501, pty.SideRed)))
	assert.Equal(t, types.ErrInsufficientCredits.Error(), execErr(t, env.vote(alice, 0, pty.SideRed)))
	assert.Equal(t, types.ErrInsufficientCredits.Error(), execErr(t, env.vote(bob, 1, pty.SideBlue)))
	assert.Equal(t, types.ErrAmount.Error(), execErr(t, env.buy(bob, "0.0001")))
	assert.Equal(t, types.ErrAmount.Error(), execErr(t, env.buy(bob, "")))

	gameID := int64(3)
	detail = env.send(env.createTx(alice, "CastVote", &pty.CastVote{Amount: 10, Side: pty.SideRed, GameId: &gameID}))
	assert.Equal(t, pty.ErrRoundClosed.Error(), execErr(t, detail))
	gameID = 0
	detail = env.send(env.createTx(alice, "CastVote", &pty.CastVote{Amount: 10, Side: pty.SideRed, GameId: &gameID}))
	assert.Equal(t, int32(types.ExecOk), detail.Receipt.Ty)

	//side 不合法的交易不出块
	height := env.exec.Height()
	_, err := env.exec.ExecTx(env.createTx(alice, "CastVote", &pty.CastVote{Amount: 10, Side: 2}))
	assert.Equal(t, pty.ErrInvalidSide, err)
	assert.Equal(t, height, env.exec.Height())

	assert.Equal(t, int64(490), env.balance(alice))
	assert.Equal(t, &pty.ReplyGameTotals{Round: 0, Red: 10}, env.totals(0))
	env.checkConservation()
}

func TestPoolCannotSend(t *testing.T) {
	env := newTestEnv(t, "")
	env.buy(alice, "1")
	env.buy(bob, "1")
	env.vote(alice, 150, pty.SideRed)
	env.vote(bob, 100, pty.SideBlue)

	height := env.exec.Height()
	pool := dapp.ExecAddress(pty.RedVsBlueX)
	_, err := env.exec.ExecTx(env.createTx(pool, "WithdrawCredits", &pty.WithdrawCredits{Amount: 250}))
	assert.Equal(t, types.ErrFromAddr, err)
	owner := dapp.ExecAddress(pty.OwnerExecName)
	_, err = env.exec.ExecTx(env.createTx(owner, "WithdrawCredits", &pty.WithdrawCredits{Amount: 1}))
	assert.Equal(t, types.ErrFromAddr, err)
	assert.Equal(t, height, env.exec.Height())
	assert.Equal(t, int64(250), env.supply().Pool)

	env.mineTo(128)
	detail := env.claim(alice, 0)
	require.Equal(t, int32(types.ExecOk), detail.Receipt.Ty)
	clog := findLog(t, detail, pty.TyLogRedVsBlueClaimEarnings).(*pty.ReceiptClaimEarnings)
	assert.Equal(t, int64(250), clog.Earned)
	assert.Equal(t, int64(1100), env.balance(alice))
	env.checkConservation()
}

func TestBuyAndWithdraw(t *testing.T) {
	env := newTestEnv(t, "")
	detail := env.buy(dave, "1.0005")
	blog := findLog(t, detail, pty.TyLogRedVsBlueBuyCredits).(*pty.ReceiptBuyCredits)
	assert.Equal(t, int64(1000), blog.Credits)
	assert.Equal(t, "1", blog.Native)
	assert.Equal(t, "0.0005", blog.Refund)
	//账户的 receipt 也在 log 中
	assert.Equal(t, int32(types.TyLogCreditDeposit), detail.Receipt.Logs[0].Ty)

	detail = env.withdraw(dave, 250)
	wlog := findLog(t, detail, pty.TyLogRedVsBlueWithdrawCredits).(*pty.ReceiptWithdrawCredits)
	assert.Equal(t, "0.25", wlog.Native)
	assert.Equal(t, int64(750), wlog.Balance)
	assert.Equal(t, int64(750), env.supply().Supply)

	got, err := env.exec.QueryTransaction(detail.Hash)
	require.NoError(t, err)
	result := got.Result()
	assert.Equal(t, "ExecOk", result.Receipt.TyName)
	names := make([]string, 0, len(result.Receipt.Logs))
	for _, l := range result.Receipt.Logs {
		names = append(names, l.TyName)
	}
	assert.Equal(t, []string{"LogCreditWithdraw", "LogRedVsBlueWithdrawCredits"}, names)
	env.checkConservation()
}

func TestTieRefund(t *testing.T) {
	env := newTestEnv(t, `{"windowSize":8}`)
	env.buy(alice, "1")
	env.buy(carol, "1")
	env.vote(alice, 100, pty.SideRed)
	env.vote(carol, 100, pty.SideBlue)
	env.mineTo(8)
	assert.Equal(t, int64(100), env.earnings(0, alice).Earned)
	assert.Equal(t, int64(100), env.earnings(0, carol).Earned)
	env.claim(alice, 0)
	env.claim(carol, 0)
	assert.Equal(t, int64(1000), env.balance(alice))
	assert.Equal(t, int64(1000), env.balance(carol))
	assert.Equal(t, int64(0), env.supply().Pool)
}

func TestVoteBothSides(t *testing.T) {
	env := newTestEnv(t, `{"windowSize":8}`)
	env.buy(alice, "1")
	env.buy(bob, "1")
	env.vote(alice, 100, pty.SideRed)
	env.vote(alice, 50, pty.SideBlue)
	env.vote(bob, 30, pty.SideBlue)
	env.mineTo(8)
	assert.Equal(t, &pty.ReplyEarnings{Round: 0, Addr: alice, Earned: 180, Spent: 150}, env.earnings(0, alice))
	assert.Equal(t, &pty.ReplyEarnings{Round: 0, Addr: bob, Earned: 0, Spent: 30}, env.earnings(0, bob))
	env.claim(alice, 0)
	assert.Equal(t, int64(1030), env.balance(alice))
	env.checkConservation()
}

func TestOwnerFee(t *testing.T) {
	env := newTestEnv(t, `{"windowSize":8,"feeBasisPoints":1000,"owner":"`+dave+`"}`)
	env.buy(alice, "1")
	env.buy(bob, "1")
	env.buy(carol, "1")
	env.vote(alice, 100, pty.SideRed)
	env.vote(bob, 200, pty.SideRed)
	env.vote(carol, 100, pty.SideBlue)
	env.mineTo(8)

	detail := env.claim(alice, 0)
	clog := findLog(t, detail, pty.TyLogRedVsBlueClaimEarnings).(*pty.ReceiptClaimEarnings)
	assert.Equal(t, int64(130), clog.Earned)
	assert.Equal(t, int64(3), clog.Fee)
	assert.Equal(t, dave, clog.Owner)
	env.claim(bob, 0)
	env.claim(carol, 0)

	assert.Equal(t, int64(1030), env.balance(alice))
	assert.Equal(t, int64(1060), env.balance(bob))
	assert.Equal(t, int64(900), env.balance(carol))
	total := env.supply()
	assert.Equal(t, int64(9), total.Owner)
	//取整剩下的部分留在奖池
	assert.Equal(t, int64(1), total.Pool)
	env.checkConservation()
}

func TestZeroFeeUnchanged(t *testing.T) {
	env := newTestEnv(t, `{"windowSize":8,"feeBasisPoints":0}`)
	env.buy(alice, "1")
	env.buy(carol, "1")
	env.vote(alice, 100, pty.SideRed)
	env.vote(carol, 50, pty.SideBlue)
	env.mineTo(8)
	env.claim(alice, 0)
	assert.Equal(t, int64(1050), env.balance(alice))
	assert.Equal(t, int64(0), env.supply().Owner)
}

func TestPlayerGames(t *testing.T) {
	env := newTestEnv(t, `{"windowSize":8}`)
	env.buy(alice, "1")
	env.buy(bob, "1")
	env.vote(alice, 10, pty.SideRed)
	env.vote(alice, 10, pty.SideRed)
	env.vote(bob, 5, pty.SideBlue)
	env.mineTo(8)
	env.vote(alice, 20, pty.SideBlue)
	env.claim(alice, 0)
	env.mineTo(24)
	env.vote(alice, 30, pty.SideRed)

	reply := env.query("GetPlayerGames", &pty.ReqPlayerGames{Addr: alice, Direction: dbm.ListASC}).(*pty.ReplyPlayerGames)
	require.Len(t, reply.Games, 3)
	assert.Equal(t, int64(3), reply.Total)
	assert.Equal(t, &pty.ReplyEarnings{Round: 0, Addr: alice, Earned: 25, Spent: 20, Claimed: true}, reply.Games[0])
	assert.Equal(t, &pty.ReplyEarnings{Round: 1, Addr: alice, Earned: 20, Spent: 20}, reply.Games[1])
	assert.Equal(t, &pty.ReplyEarnings{Round: 3, Addr: alice, Earned: 0, Spent: 30}, reply.Games[2])

	round := int64(3)
	reply = env.query("GetPlayerGames", &pty.ReqPlayerGames{Addr: alice, Round: &round, Count: 1}).(*pty.ReplyPlayerGames)
	require.Len(t, reply.Games, 1)
	assert.Equal(t, int64(1), reply.Games[0].Round)
	assert.Equal(t, int64(3), reply.Total)

	_, err := env.exec.Query(pty.RedVsBlueX, "GetPlayerGames", []byte(`{"addr":"`+carol+`"}`))
	assert.Equal(t, types.ErrNotFound, err)
	_, err = env.exec.Query(pty.RedVsBlueX, "GetPlayerGames", []byte(`{"addr":"bad"}`))
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = env.exec.Query(pty.RedVsBlueX, "GetPlayerGames", []byte(`{"addr":"`+alice+`","direction":2}`))
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestEmptyRound(t *testing.T) {
	env := newTestEnv(t, "")
	assert.Equal(t, &pty.ReplyGameTotals{Round: 42}, env.totals(42))
	assert.Equal(t, &pty.ReplyEarnings{Round: 42, Addr: bob}, env.earnings(42, bob))
	env.mineTo(200)
	assert.Equal(t, &pty.ReplyEarnings{Round: 0, Addr: bob}, env.earnings(0, bob))
	for _, funcName := range []string{"GetRoundInfo", "GetGameTotals"} {
		_, err := env.exec.Query(pty.RedVsBlueX, funcName, []byte(`{"round":-1}`))
		assert.Equal(t, types.ErrInvalidParam, err, funcName)
	}
	_, err := env.exec.Query(pty.RedVsBlueX, "GetEarnings", []byte(`{"round":-1,"addr":"`+bob+`"}`))
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = env.exec.Query(pty.RedVsBlueX, "GetUnknown", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}

func TestConfig(t *testing.T) {
	cfg, err := pty.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(128), cfg.WindowSize)
	assert.Equal(t, dapp.ExecAddress(pty.OwnerExecName), cfg.OwnerAddr())

	for _, sub := range []string{`{"windowSize":0}`, `{"feeBasisPoints":10001}`, `{"feeBasisPoints":-1}`,
		`{"owner":"xx"}`, `{"creditsPerNative":0}`, `{"windowSize":"a"}`,
		`{"owner":"` + dapp.ExecAddress(pty.RedVsBlueX) + `"}`} {
		_, err := pty.ParseConfig([]byte(sub))
		assert.Error(t, err, sub)
	}
	assert.Panics(t, func() { Init("other", nil) })
	assert.Panics(t, func() { Init(pty.RedVsBlueX, []byte(`{"windowSize":-1}`)) })
}
