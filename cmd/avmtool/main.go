// avmtool inspects wire-format function blocks against a configured
// player instance: it decodes the CBOR descriptor, builds the runtime
// function, and reports what the calling convention would preload.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/kmeisthax/ruffle-sub000/pkg/avm1"
	"github.com/kmeisthax/ruffle-sub000/pkg/config"
	"github.com/kmeisthax/ruffle-sub000/pkg/swfdata"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("avmtool")

// stubClip stands in for the display hierarchy so descriptors can be
// inspected without a player attached.
type stubClip struct {
	swfVersion uint8
}

func (c *stubClip) SwfVersion() uint8 { return c.swfVersion }

func (c *stubClip) Root() avm1.DisplayObject { return c }

func (c *stubClip) Parent() avm1.DisplayObject { return nil }

func (c *stubClip) Object(ctx *avm1.UpdateContext) avm1.Value { return avm1.Undefined }

func main() {
	configPath := flag.String("config", "", "Player configuration file (TOML)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: avmtool [-config player.toml] <block.cbor>\n")
		os.Exit(64)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Errorf("%s", err.Error())
			os.Exit(65)
		}
		cfg = loaded
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Errorf("read block: %s", err.Error())
		os.Exit(66)
	}

	block, err := swfdata.UnmarshalFunctionBlock(data)
	if err != nil {
		log.Errorf("%s", err.Error())
		os.Exit(65)
	}

	if err := inspect(cfg, block); err != nil {
		log.Errorf("%s", err.Error())
		os.Exit(70)
	}
}

func inspect(cfg *config.Config, block *swfdata.FunctionBlock) error {
	avm := avm1.NewAvm1(cfg.Player.Version)
	ctx := avm1.NewUpdateContext(cfg.Player.Version)

	swfVersion := block.SwfVersion
	if swfVersion == 0 {
		swfVersion = cfg.Player.DefaultSwfVersion
	}
	clip := &stubClip{swfVersion: swfVersion}

	scope := avm1.FromGlobalObject(avm.Globals())
	pool := &avm1.ConstantPool{Strings: block.ConstantPool}
	fn := avm1.FunctionFromDF2(swfVersion, swfdata.NewSwfSlice(block.Actions), &block.Function, scope, pool, clip)

	name := block.Function.Name
	if name == "" {
		name = "<anonymous>"
	}
	fmt.Printf("function %s (swf v%d, player v%d)\n", name, swfVersion, cfg.Player.Version)
	fmt.Printf("  actions: %d bytes\n", fn.Data().Len())
	fmt.Printf("  registers: %d\n", fn.RegisterCount())
	fmt.Printf("  constant pool: %d strings\n", len(block.ConstantPool))
	for _, p := range block.Function.Params {
		if p.Register != 0 {
			fmt.Printf("  param %q -> r%d\n", p.Name, p.Register)
		} else {
			fmt.Printf("  param %q -> local\n", p.Name)
		}
	}

	// Run the calling convention against an empty call so the preload
	// layout can be reported.
	fnObj := avm1.NewFunctionObject(avm1.ActionExecutable(fn), avm.Prototypes().Function, avm.Constructors().Function, avm1.NewScriptObject(avm.Prototypes().Object))
	this := avm1.NewScriptObject(avm.Prototypes().Object)
	rv, err := fnObj.Call(avm, ctx, this, nil, nil)
	if err != nil {
		return err
	}
	frame := rv.Frame()
	if frame == nil {
		return fmt.Errorf("avmtool: expected a frame-backed result")
	}
	for r := uint8(1); r <= fn.RegisterCount(); r++ {
		fmt.Printf("  r%d preloaded: %s\n", r, frame.LocalRegister(r).TypeOf())
	}
	avm.PopStackFrame()
	return nil
}
