package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beepkz/BEEP-BookingService/internal/flow"
	"github.com/beepkz/BEEP-BookingService/pkg/apiclient"
	"github.com/beepkz/BEEP-BookingService/pkg/logger"
)

// consoleNotifier показывает сообщения флоу в терминале
type consoleNotifier struct{}

func (consoleNotifier) Notify(message string) {
	fmt.Printf(">> %s\n", message)
}

// consoleConfirmer задаёт вопрос да/нет через stdin
type consoleConfirmer struct {
	reader *bufio.Reader
}

func (c *consoleConfirmer) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes" || answer == "д" || answer == "да"
}

func main() {
	baseURL := flag.String("addr", "http://localhost:8080", "адрес сервиса бронирования")
	logPath := flag.String("log", "logs/bookcli.log", "путь к файлу логов")
	flag.Parse()

	log, err := logger.New(*logPath, "info")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init error: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	reader := bufio.NewReader(os.Stdin)
	client := apiclient.NewClient(*baseURL, apiclient.DefaultTimeout, log)
	session := flow.NewSession(client, consoleNotifier{}, &consoleConfirmer{reader: reader}, log)

	ctx := context.Background()

	fmt.Println("BEEP: запись в автосервис. Введите help для списка команд")
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			printHelp()
		case "exit", "quit":
			return
		case "register":
			register(ctx, reader, client)
		case "login":
			login(ctx, reader, client)
		case "categories":
			if session.LoadCategories(ctx) == nil {
				for _, c := range session.Categories() {
					fmt.Printf("  [%d] %s - %s\n", c.ID, c.Name, c.Description)
				}
			}
		case "services":
			var categoryID int64
			if len(args) > 0 {
				categoryID, _ = strconv.ParseInt(args[0], 10, 64)
			}
			if session.LoadServices(ctx, categoryID) == nil {
				for _, sv := range session.Services() {
					fmt.Printf("  [%d] %s - %.0f KZT, %d мин\n", sv.ID, sv.Name, sv.BasePrice, sv.DurationMinutes)
				}
			}
		case "cars":
			if session.LoadCars(ctx) == nil {
				for _, c := range session.Cars() {
					fmt.Printf("  [%d] %s %s (%d), %s\n", c.ID, c.Brand, c.Model, c.Year, c.Type)
				}
			}
		case "masters":
			if session.LoadMasters(ctx) == nil {
				printMasters(session.Search(""))
			}
		case "search":
			printMasters(session.Search(strings.Join(args, " ")))
		case "favorites":
			session.SetFavoritesFilter(len(args) > 0 && args[0] == "on")
			printMasters(session.Search(""))
		case "fav":
			id, ok := parseID(args)
			if ok {
				session.ToggleFavorite(ctx, id)
			}
		case "master":
			id, ok := parseID(args)
			if ok {
				session.SelectMaster(ctx, id)
				printSlots(session)
			}
		case "date":
			if len(args) == 0 {
				fmt.Println("usage: date YYYY-MM-DD")
				continue
			}
			session.SetDate(ctx, args[0])
			printSlots(session)
		case "service":
			id, ok := parseID(args)
			if ok {
				session.SelectService(id)
			}
		case "car":
			id, ok := parseID(args)
			if ok {
				session.SelectCar(id)
			}
		case "time":
			if len(args) == 0 {
				fmt.Println("usage: time HH:MM")
				continue
			}
			session.SelectTime(args[0])
		case "price":
			if est, err := session.EstimatePrice(ctx); err == nil {
				printEstimate(est)
			}
		case "book":
			session.Submit(ctx, strings.Join(args, " "))
		case "appointments":
			if session.LoadAppointments(ctx) == nil {
				for _, v := range session.AppointmentViews() {
					fmt.Printf("  [%d] %s у %s, %s %s, статус %s\n",
						v.ID, v.ServiceName, v.MasterName, v.Date, v.Time, v.Status)
				}
			}
		case "cancel":
			id, ok := parseID(args)
			if ok {
				session.CancelAppointment(ctx, id)
			}
		case "delete":
			id, ok := parseID(args)
			if ok {
				session.DeleteAppointment(ctx, id)
			}
		case "edit":
			if len(args) < 3 {
				fmt.Println("usage: edit <id> <YYYY-MM-DD> <HH:MM> [комментарий]")
				continue
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Println("некорректный идентификатор")
				continue
			}
			session.EditAppointment(ctx, id, args[1], args[2], strings.Join(args[3:], " "))
		case "reviews":
			id, ok := parseID(args)
			if !ok {
				continue
			}
			reviews, err := client.MasterReviews(ctx, id)
			if err != nil {
				fmt.Println(">> не удалось загрузить отзывы")
				continue
			}
			for _, r := range reviews {
				fmt.Printf("  %s, оценка %d: %s\n", r.UserName, r.Rating, r.Comment)
			}
		case "notifications":
			notifications, err := client.Notifications(ctx)
			if err != nil {
				fmt.Println(">> не удалось загрузить уведомления")
				continue
			}
			for _, n := range notifications {
				mark := " "
				if !n.IsRead {
					mark = "*"
				}
				fmt.Printf(" %s [%d] %s: %s\n", mark, n.ID, n.Title, n.Message)
			}
		default:
			fmt.Printf("неизвестная команда %q, введите help\n", cmd)
		}
	}
}

func register(ctx context.Context, reader *bufio.Reader, client *apiclient.Client) {
	req := apiclient.RegisterRequest{
		Name:     ask(reader, "Имя"),
		Email:    ask(reader, "Email"),
		Phone:    ask(reader, "Телефон"),
		Password: ask(reader, "Пароль"),
	}
	session, err := client.Register(ctx, req)
	if err != nil {
		fmt.Printf(">> регистрация не удалась: %v\n", err)
		return
	}
	client.SetToken(session.Token)
	fmt.Printf(">> добро пожаловать, %s\n", session.User.Name)
}

func login(ctx context.Context, reader *bufio.Reader, client *apiclient.Client) {
	email := ask(reader, "Email")
	password := ask(reader, "Пароль")
	session, err := client.Login(ctx, email, password)
	if err != nil {
		if apiclient.IsUnauthorized(err) {
			fmt.Println(">> неверный email или пароль")
		} else {
			fmt.Printf(">> вход не удался: %v\n", err)
		}
		return
	}
	client.SetToken(session.Token)
	fmt.Printf(">> добро пожаловать, %s\n", session.User.Name)
}

func ask(reader *bufio.Reader, prompt string) string {
	fmt.Printf("%s: ", prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		fmt.Println("укажите идентификатор")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Println("некорректный идентификатор")
		return 0, false
	}
	return id, true
}

func printMasters(masters []apiclient.Master) {
	for _, m := range masters {
		marks := ""
		if m.IsVerified {
			marks += " ✓"
		}
		if m.IsFavorite {
			marks += " ★"
		}
		fmt.Printf("  [%d] %s, %s, рейтинг %.1f (%d отзывов)%s\n",
			m.ID, m.Name, m.Specialization, m.Rating, m.ReviewCount, marks)
	}
}

func printSlots(session *flow.Session) {
	state, slots := session.Slots()
	switch state {
	case flow.SlotStateIdle:
		fmt.Println("  выберите мастера и дату, чтобы увидеть свободное время")
	case flow.SlotStateLoading:
		fmt.Println("  загрузка...")
	case flow.SlotStateEmpty:
		fmt.Println("  на эту дату всё занято, попробуйте другую")
	case flow.SlotStateError:
		fmt.Println("  не удалось загрузить свободное время")
	case flow.SlotStateLoaded:
		fmt.Printf("  свободно: %s\n", strings.Join(slots, ", "))
	}
}

func printEstimate(est *flow.Estimate) {
	fmt.Printf("  %s, %s\n", est.ServiceName, est.CarTitle)
	fmt.Printf("  возраст: %d лет, класс: %s\n", est.CarAge, est.CarType)
	fmt.Printf("  базовая стоимость: %s\n", est.BasePrice)
	for _, d := range est.Details {
		fmt.Printf("    %s: %s\n", d.Description, d.Amount)
	}
	fmt.Printf("  итого: %s (вилка %s - %s)\n", est.FinalPrice, est.MinPrice, est.MaxPrice)
}

func printHelp() {
	fmt.Println(`Команды:
  register / login              регистрация и вход
  categories                    список категорий услуг
  services [categoryID]         список услуг
  cars                          справочник автомобилей
  masters                       список мастеров
  search <текст>                поиск по мастерам
  favorites on|off              фильтр избранного
  fav <masterID>                добавить/убрать из избранного
  reviews <masterID>            отзывы о мастере
  master <masterID>             выбрать мастера
  date YYYY-MM-DD               выбрать дату
  time HH:MM                    выбрать время из свободных
  service <serviceID>           выбрать услугу
  car <carID>                   выбрать автомобиль
  price                         рассчитать стоимость
  book [комментарий]            создать запись
  appointments                  мои записи
  edit <id> <дата> <время> [к.] перенести запись
  cancel <id>                   отменить запись
  delete <id>                   удалить отменённую запись
  notifications                 уведомления
  exit                          выход`)
}
