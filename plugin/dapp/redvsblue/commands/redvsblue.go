// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 红蓝对战命令行
package commands

import (
	pty "github.com/33cn/redvsblue/plugin/dapp/redvsblue/types"
	syscmd "github.com/33cn/redvsblue/system/dapp/commands"
	"github.com/33cn/redvsblue/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// RedVsBlueCmd redvsblue 命令入口
func RedVsBlueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redvsblue",
		Short: "Red vs blue wagering game",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreditsCmd(),
		VoteCmd(),
		ClaimCmd(),
		RoundCmd(),
		TotalsCmd(),
		EarningsCmd(),
		GamesCmd(),
		OwnerCmd(),
		SupplyCmd(),
	)
	return cmd
}

// CreditsCmd credit 买入, 提取和查询
func CreditsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Buy, withdraw or query credits",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		buyCreditsCmd(),
		withdrawCreditsCmd(),
		creditBalanceCmd(),
	)
	return cmd
}

func buyCreditsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy credits with native coins",
		Run:   buyCredits,
	}
	cmd.Flags().StringP("from", "f", "", "account address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().StringP("value", "v", "", "native amount, e.g. 1.5")
	cmd.MarkFlagRequired("value")
	return cmd
}

func buyCredits(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	value, _ := cmd.Flags().GetString("value")
	amount, err := decimal.NewFromString(value)
	if err != nil || !amount.IsPositive() {
		cmd.PrintErrln(types.ErrAmount)
		return
	}
	syscmd.SendAction(cmd, pty.RedVsBlueX, "BuyCredits", from, amount.String(), &pty.BuyCredits{})
}

func withdrawCreditsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw credits back to native coins",
		Run:   withdrawCredits,
	}
	cmd.Flags().StringP("from", "f", "", "account address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().Int64P("amount", "a", 0, "credits to withdraw")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func withdrawCredits(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	amount, _ := cmd.Flags().GetInt64("amount")
	syscmd.SendAction(cmd, pty.RedVsBlueX, "WithdrawCredits", from, "", &pty.WithdrawCredits{Amount: amount})
}

func creditBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get credit balance of an address",
		Run:   creditBalance,
	}
	addAddrFlag(cmd)
	return cmd
}

func creditBalance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	var res pty.ReplyCreditBalance
	syscmd.Query(cmd, pty.RedVsBlueX, "GetCreditBalance", &types.ReqAddr{Addr: addr}, &res)
}

// VoteCmd 给红方或蓝方投票
func VoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Vote credits for red or blue in the current round",
		Run:   vote,
	}
	cmd.Flags().StringP("from", "f", "", "account address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().Int64P("amount", "a", 0, "credits to vote")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("side", "s", "", "red or blue")
	cmd.MarkFlagRequired("side")
	cmd.Flags().Int64P("game", "g", -1, "round the vote is meant for, rejected if it is not the current round")
	return cmd
}

func vote(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	amount, _ := cmd.Flags().GetInt64("amount")
	sideName, _ := cmd.Flags().GetString("side")
	side, err := pty.ParseSide(sideName)
	if err != nil {
		cmd.PrintErrln(err)
		return
	}
	param := &pty.CastVote{Amount: amount, Side: side}
	if cmd.Flags().Changed("game") {
		game, _ := cmd.Flags().GetInt64("game")
		param.GameId = &game
	}
	syscmd.SendAction(cmd, pty.RedVsBlueX, "CastVote", from, "", param)
}

// ClaimCmd 领取已结束轮次的收益
func ClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim earnings of a closed round",
		Run:   claim,
	}
	cmd.Flags().StringP("from", "f", "", "account address")
	cmd.MarkFlagRequired("from")
	addRoundFlag(cmd)
	return cmd
}

func claim(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	round, _ := cmd.Flags().GetInt64("round")
	syscmd.SendAction(cmd, pty.RedVsBlueX, "ClaimEarnings", from, "", &pty.ClaimEarnings{Round: round})
}

// RoundCmd 当前轮次, 指定 round 时查询该轮的区间
func RoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Get the current round or the window of a round",
		Run:   round,
	}
	cmd.Flags().Int64P("round", "r", -1, "round id")
	return cmd
}

func round(cmd *cobra.Command, args []string) {
	if cmd.Flags().Changed("round") {
		id, _ := cmd.Flags().GetInt64("round")
		var res pty.ReplyRoundInfo
		syscmd.Query(cmd, pty.RedVsBlueX, "GetRoundInfo", &pty.ReqRound{Round: id}, &res)
		return
	}
	var res pty.ReplyCurrentRound
	syscmd.Query(cmd, pty.RedVsBlueX, "GetCurrentRound", &types.ReqNil{}, &res)
}

// TotalsCmd 轮次双方的投票总额
func TotalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Get red and blue totals of a round",
		Run:   totals,
	}
	addRoundFlag(cmd)
	return cmd
}

func totals(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetInt64("round")
	var res pty.ReplyGameTotals
	syscmd.Query(cmd, pty.RedVsBlueX, "GetGameTotals", &pty.ReqRound{Round: id}, &res)
}

// EarningsCmd 地址在某一轮的收益
func EarningsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "earnings",
		Short: "Get earnings of an address in a round",
		Run:   earnings,
	}
	addRoundFlag(cmd)
	addAddrFlag(cmd)
	return cmd
}

func earnings(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetInt64("round")
	addr, _ := cmd.Flags().GetString("addr")
	var res pty.ReplyEarnings
	syscmd.Query(cmd, pty.RedVsBlueX, "GetEarnings", &pty.ReqEarnings{Round: id, Addr: addr}, &res)
}

// GamesCmd 地址参与过的轮次
func GamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "List rounds an address voted in",
		Run:   games,
	}
	addAddrFlag(cmd)
	cmd.Flags().Int64P("round", "r", -1, "start after this round")
	cmd.Flags().Int32P("count", "c", 10, "maximum return number")
	cmd.Flags().Int32P("direction", "d", 0, "0: newest first, 1: oldest first")
	return cmd
}

func games(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	req := &pty.ReqPlayerGames{Addr: addr, Count: count, Direction: direction}
	if cmd.Flags().Changed("round") {
		id, _ := cmd.Flags().GetInt64("round")
		req.Round = &id
	}
	var res pty.ReplyPlayerGames
	syscmd.Query(cmd, pty.RedVsBlueX, "GetPlayerGames", req, &res)
}

// OwnerCmd 收取手续费的地址
func OwnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Get owner address",
		Run:   owner,
	}
	return cmd
}

func owner(cmd *cobra.Command, args []string) {
	var res types.ReplyString
	syscmd.Query(cmd, pty.RedVsBlueX, "GetOwnerAddress", &types.ReqNil{}, &res)
}

// SupplyCmd credit 总量和奖池余额
func SupplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supply",
		Short: "Get total credits, pool and owner balance",
		Run:   supply,
	}
	return cmd
}

func supply(cmd *cobra.Command, args []string) {
	var res pty.ReplyTotalCredits
	syscmd.Query(cmd, pty.RedVsBlueX, "GetTotalCredits", &types.ReqNil{}, &res)
}

func addAddrFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
}

func addRoundFlag(cmd *cobra.Command) {
	cmd.Flags().Int64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
}
