// Package studiolingo automates multi-language metadata translation in a
// third-party studio editing UI.
//
// The engine drives the host page's own controls to add a language, open its
// metadata editor, trigger an AI translation, await completion, and publish
// the result, one language at a time. The host page is not under this
// module's control: every lookup goes through a layered DOM locator with
// bounded timeouts, and every failure is classified so a batch can continue,
// retry, or abort.
//
// Beyond translation, an Assistant generates fresh metadata through the
// same gateway: alternative titles, descriptions, and search tags seeded
// from whatever the video already has.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/studiolingo/studiolingo"
//	    "github.com/studiolingo/studiolingo/dom"
//	    "github.com/studiolingo/studiolingo/entitlement"
//	    "github.com/studiolingo/studiolingo/gateway"
//	)
//
//	func main() {
//	    gen := gateway.NewOpenAIGenerator(gateway.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    var page dom.Page = openStudioPage() // embedder-provided driver
//
//	    ctrl := studiolingo.NewBatchController(page, gen,
//	        studiolingo.WithGate(entitlement.NewStaticGate(true)),
//	    )
//
//	    state, err := ctrl.Start(context.Background(), []string{"ja", "de", "fr"})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("success=%d failed=%d\n", len(state.Success), len(state.Failed))
//	}
package studiolingo
