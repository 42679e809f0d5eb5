package token_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/x/multisig"
	"github.com/iov-one/vault/x/token"
)

func TestBackendSettlement(t *testing.T) {
	Convey("Given a two signer vault paying out of a token pool", t, func() {
		db := vaulttest.MemStore()
		auth := &vaulttest.CtxAuth{Key: "auth"}
		issuer := vaulttest.SequentialAddress(1)
		pool := vaulttest.SequentialAddress(100)
		backend := token.NewBackend(pool)
		ctrl := backend.Controller()

		So(ctrl.Create(db, "VLT", issuer), ShouldBeNil)
		So(ctrl.Issue(db, issuer, pool, 1000), ShouldBeNil)

		signers := []vault.Address{
			vaulttest.SequentialAddress(2),
			vaulttest.SequentialAddress(3),
		}
		engine, err := multisig.NewEngine(db, auth, backend, signers, 2)
		So(err, ShouldBeNil)

		ctx := func(a vault.Address) vault.Context {
			return auth.SetSigners(context.Background(), a)
		}
		rcpt := vaulttest.SequentialAddress(9)

		Convey("When a transfer reaches quorum and executes", func() {
			id, err := engine.Propose(ctx(signers[0]), rcpt, 400)
			So(err, ShouldBeNil)
			So(engine.Approve(ctx(signers[1]), id), ShouldBeNil)
			So(engine.Execute(ctx(signers[0]), id), ShouldBeNil)

			Convey("Then tokens move from the pool to the recipient", func() {
				poolBalance, err := ctrl.BalanceOf(db, pool)
				So(err, ShouldBeNil)
				So(poolBalance, ShouldEqual, 600)
				rcptBalance, err := ctrl.BalanceOf(db, rcpt)
				So(err, ShouldBeNil)
				So(rcptBalance, ShouldEqual, 400)
			})
		})

		Convey("When the token is paused", func() {
			So(ctrl.Pause(db, issuer), ShouldBeNil)

			id, err := engine.Propose(ctx(signers[0]), rcpt, 400)
			So(err, ShouldBeNil)
			So(engine.Approve(ctx(signers[1]), id), ShouldBeNil)

			Convey("Then execution is refused and nothing moves", func() {
				err := engine.Execute(ctx(signers[0]), id)
				So(multisig.ErrSettlementFailed.Is(err), ShouldBeTrue)

				tr, err := engine.GetTransfer(id)
				So(err, ShouldBeNil)
				So(tr.Executed, ShouldBeFalse)

				poolBalance, err := ctrl.BalanceOf(db, pool)
				So(err, ShouldBeNil)
				So(poolBalance, ShouldEqual, 1000)
			})

			Convey("And after unpausing the same transfer executes", func() {
				err := engine.Execute(ctx(signers[0]), id)
				So(multisig.ErrSettlementFailed.Is(err), ShouldBeTrue)

				So(ctrl.Unpause(db, issuer), ShouldBeNil)
				So(engine.Execute(ctx(signers[1]), id), ShouldBeNil)

				rcptBalance, err := ctrl.BalanceOf(db, rcpt)
				So(err, ShouldBeNil)
				So(rcptBalance, ShouldEqual, 400)
			})
		})
	})
}
