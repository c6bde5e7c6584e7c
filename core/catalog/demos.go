package catalog

import (
	"fmt"
	"strings"

	"pattern-catalog/core/abstractfactory"
	"pattern-catalog/core/adapter"
	"pattern-catalog/core/bridge"
	"pattern-catalog/core/builder"
	"pattern-catalog/core/chain"
	"pattern-catalog/core/composite"
	"pattern-catalog/core/decorator"
	"pattern-catalog/core/facade"
	"pattern-catalog/core/factorymethod"
	"pattern-catalog/core/mediator"
	"pattern-catalog/core/memento"
	"pattern-catalog/core/observer"
	"pattern-catalog/core/proxy"
	"pattern-catalog/core/singleton"
	"pattern-catalog/core/state"
	"pattern-catalog/core/ui"
	"pattern-catalog/core/visitor"
	"pattern-catalog/internal/errors"
)

// Builtins returns the demonstration of every pattern in the catalogue.
func Builtins() []Demo {
	return []Demo{
		{Name: "abstract-factory", Category: Creational, Summary: "pick a data source factory by kind", Run: runAbstractFactory},
		{Name: "builder", Category: Creational, Summary: "assemble a component from optional parameters", Run: runBuilder},
		{Name: "factory-method", Category: Creational, Summary: "map a country to its currency", Run: runFactoryMethod},
		{Name: "singleton", Category: Creational, Summary: "share one network driver", Run: runSingleton},
		{Name: "adapter", Category: Structural, Summary: "feed integers to a string consumer", Run: runAdapter},
		{Name: "bridge", Category: Structural, Summary: "color any shape", Run: runBridge},
		{Name: "composite", Category: Structural, Summary: "price a tree of equipment", Run: runComposite},
		{Name: "decorator", Category: Structural, Summary: "flavour a coffee machine", Run: runDecorator},
		{Name: "facade", Category: Structural, Summary: "store a user behind a repository", Run: runFacade},
		{Name: "proxy", Category: Structural, Summary: "load an image on first display", Run: runProxy},
		{Name: "chain-of-responsibility", Category: Behavioral, Summary: "build request headers handler by handler", Run: runChain},
		{Name: "mediator", Category: Behavioral, Summary: "broadcast chat messages", Run: runMediator},
		{Name: "memento", Category: Behavioral, Summary: "snapshot and restore state", Run: runMemento},
		{Name: "observer", Category: Behavioral, Summary: "notify listeners by topic", Run: runObserver},
		{Name: "state", Category: Behavioral, Summary: "guard a token behind login state", Run: runState},
		{Name: "visitor", Category: Behavioral, Summary: "choose a scoop from a contract", Run: runVisitor},
	}
}

func init() {
	for _, d := range Builtins() {
		if err := Register(d); err != nil {
			panic(err)
		}
	}
}

func runAbstractFactory(w *ui.Writer) error {
	for _, kind := range abstractfactory.Kinds() {
		factory, err := abstractfactory.NewFactory(kind)
		if err != nil {
			return err
		}
		w.Success("%s factory made %T", kind, factory.MakeDataSource())
	}
	if _, err := abstractfactory.NewFactory(abstractfactory.Kind(0)); errors.IsType(err, errors.TypeUnsupported) {
		w.Warning("%v", err)
	} else {
		return fmt.Errorf("expected unsupported argument, got %v", err)
	}
	return nil
}

func runBuilder(w *ui.Writer) error {
	component := builder.NewBuilder().
		SetParam1("Some value").
		SetParam3(true).
		Build()

	w.Println("param1 = %s", describe(component.Param1))
	w.Println("param2 = %s", describe(component.Param2))
	w.Println("param3 = %s", describe(component.Param3))
	return nil
}

func describe[T any](p *T) string {
	if p == nil {
		return "unset"
	}
	return fmt.Sprint(*p)
}

func runFactoryMethod(w *ui.Writer) error {
	for _, country := range factorymethod.Countries() {
		name := strings.TrimPrefix(fmt.Sprintf("%T", country), "factorymethod.")
		w.Println("%-7s %s", name, factorymethod.CurrencyForCountry(country).Code)
	}
	return nil
}

func runSingleton(w *ui.Writer) error {
	first := singleton.Driver().Log()
	second := singleton.Driver().Log()
	w.Println("driver %s", first.ID())
	if first != second {
		return fmt.Errorf("driver %s is not %s", first.ID(), second.ID())
	}
	w.Success("both callers share the same driver")
	return nil
}

func runAdapter(w *ui.Writer) error {
	adaptee := adapter.Adaptee{}

	prebuilt := adaptee.SpecificCall(adapter.Converter{}.Convert(adapter.Target{}.Call(3)))
	w.Println("converter:     %s", prebuilt)

	rebuilt := adaptee.SpecificCall(adapter.LimitAdapter{}.Convert(3))
	w.Println("limit adapter: %s", rebuilt)
	return nil
}

func runBridge(w *ui.Writer) error {
	for _, shape := range []string{"Rectangle", "Circle"} {
		for _, color := range []string{"Red", "Blue"} {
			w.Println("%s", bridge.NewColorShape(color, bridge.NewShape(shape)).RenderColorShape())
		}
	}
	return nil
}

func runComposite(w *ui.Writer) error {
	computer := composite.Workstation()
	RenderPrices(w, computer, "USD")

	others := composite.Others().AddEquipment(composite.PopToy())
	computer.AddComposite(others)
	w.Info("after one more pop toy: %s", computer.Price())
	return nil
}

// RenderPrices prints every node of the tree with its price, then the total.
func RenderPrices(w *ui.Writer, root composite.Node, currency string) {
	tree := w.NewPriceTree(currency)
	composite.Walk(root, func(n composite.Node, depth int) bool {
		_, group := n.(*composite.Composite)
		tree.Add(n.Name(), depth, n.Price().String(), group)
		return true
	})
	tree.Total = root.Price().String()
	tree.Render()
}

func runDecorator(w *ui.Writer) error {
	var plain, flavoured strings.Builder
	decorator.BasicMachine{}.MakeCoffee(&plain)
	decorator.Flavoured(decorator.BasicMachine{}).MakeCoffee(&flavoured)

	w.Println("plain:     %s", plain.String())
	w.Println("flavoured: %s", flavoured.String())
	return nil
}

func runFacade(w *ui.Writer) error {
	repository := facade.NewRepository(facade.NewDatabase("Bret-DB"))
	repository.StoreUser(facade.User{UserID: "T/1532/019"})

	id, ok := repository.FetchUser()
	if !ok {
		return errors.NotFound("user", facade.UserIDKey)
	}
	w.Success("fetched user %s", id)
	return nil
}

func runProxy(w *ui.Writer) error {
	image := proxy.NewProxyImage("test.jpg", w.Out())
	image.Display()
	image.Display()
	return nil
}

// Headers builds the demo request headers. With skipAuth the chain is
// entered after the authentication handler.
func Headers(token, contentType, body string, skipAuth bool) (string, error) {
	c := chain.New()
	handles := c.Pipeline(
		chain.AuthenticationHeader{Token: token},
		chain.ContentTypeHeader{ContentType: contentType},
		chain.BodyPayloadHeader{Body: body},
	)

	if skipAuth {
		return c.AddHeader(handles[1], "Headers without authentication")
	}
	return c.AddHeader(handles[0], "Headers with authentication")
}

func runChain(w *ui.Writer) error {
	for _, skip := range []bool{false, true} {
		headers, err := Headers("token", "application/json", `Body: {"username" = "joseph"}`, skip)
		if err != nil {
			return err
		}
		if skip {
			w.SubHeader("entered after authentication")
		} else {
			w.SubHeader("entered at authentication")
		}
		w.Block(headers)
		w.Println("")
	}
	return nil
}

func runMediator(w *ui.Writer) error {
	m := mediator.New()
	users := []*mediator.ChatUser{
		mediator.NewChatUser(m, "shinaz"),
		mediator.NewChatUser(m, "sethu"),
		mediator.NewChatUser(m, "nikhil"),
	}
	for _, u := range users {
		m.AddUser(u)
	}

	users[2].Send("Hi everyone!")
	for _, u := range users {
		w.Println("%-7s inbox %q", u.Name(), u.Inbox())
	}
	return nil
}

func runMemento(w *ui.Writer) error {
	originator := memento.NewOriginator("initial state")
	careTaker := &memento.CareTaker{}

	for _, next := range []string{"State 1", "State 2"} {
		careTaker.SaveState(originator.CreateMemento())
		originator.State = next
	}
	careTaker.SaveState(originator.CreateMemento())
	w.Println("current state is %s", originator.State)

	for _, idx := range []int{1, 0, 2} {
		m, err := careTaker.Restore(idx)
		if err != nil {
			return err
		}
		originator.RestoreMemento(m)
		w.Println("restored #%d: %s", idx, originator.State)
	}
	return nil
}

func runObserver(w *ui.Writer) error {
	generator := observer.NewEventGenerator()
	logListener := observer.NewLogOpenListener("path/to/log/file.txt")
	emailListener := observer.NewEmailNotificationListener("test@test.com")

	generator.Events().Subscribe("a", logListener)
	generator.Events().Subscribe("a", emailListener)
	generator.Events().Subscribe("b", emailListener)

	generator.GenerateEventA("test.txt")
	if err := generator.GenerateEventB(); err != nil {
		return err
	}

	w.Println("log listener saw   %v", logListener.Received())
	w.Println("email listener saw %v", emailListener.Received())
	return nil
}

func runState(w *ui.Writer) error {
	presenter := state.NewPresenter()

	presenter.LoginUser("admin")
	token, err := presenter.AccessToken()
	if err != nil {
		return err
	}
	w.Success("logged in, token %s", token)

	presenter.LogoutUser()
	if _, err := presenter.AccessToken(); err != nil {
		w.Warning("logged out: %v", err)
	}
	return nil
}

func runVisitor(w *ui.Writer) error {
	w.Println("vanilla(5)          %s", visitor.Deliver[visitor.VanillaIceCream](visitor.VisitorA{Contract: 5}).ScoopType)
	w.Println("blueberry(8)        %s", visitor.Deliver[visitor.BlueBerryIceCream](visitor.VisitorB{Contract: 8}).ScoopType)
	w.Println("spanish delight(10) %s", visitor.Deliver[visitor.SpanishDelightIceCream](visitor.VisitorC{Contract: 10}).ScoopType)
	return nil
}
