package report

import "pzg/document"

func introduction(c *document.Composer) {
	c.AppendHeading(1, "Введение")

	c.AppendParagraph("В современных условиях цифровизации бизнес-процессов предприятия сталкиваются с необходимостью интеграции множества разнородных информационных систем. Эффективное взаимодействие между корпоративными приложениями, базами данных и внешними сервисами становится критически важным фактором конкурентоспособности организации.", false, true)

	c.AppendParagraph("Актуальность темы обусловлена тем, что большинство современных предприятий используют несколько информационных систем: CRM для управления взаимоотношениями с клиентами, ERP для планирования ресурсов, системы складского учёта, бухгалтерские программы и другие специализированные приложения. Отсутствие интеграции между этими системами приводит к дублированию данных, ошибкам при ручном переносе информации и снижению оперативности принятия управленческих решений.", false, true)

	c.AppendParagraph("Объектом исследования является процесс информационного обмена между компонентами распределённой системы для картографического сервиса построения маршрутов.", false, true)

	c.AppendParagraph("Предметом исследования являются методы и технологии интеграции информационных систем на основе микросервисной архитектуры.", false, true)

	c.AppendParagraph("Целью курсового проекта является разработка архитектуры и прототипа интеграционного решения, обеспечивающего взаимодействие между несколькими разнородными информационными системами с использованием современных подходов, стандартов и инструментов интеграции.", false, true)

	c.AppendParagraph("Для достижения поставленной цели необходимо решить следующие задачи:", false, true)

	c.AppendListItem("провести анализ предметной области и определить интеграционные требования;", 1)
	c.AppendListItem("разработать архитектуру интеграционного решения;", 2)
	c.AppendListItem("выбрать и обосновать инструменты и технологии интеграции;", 3)
	c.AppendListItem("разработать схему обмена данными между системами;", 4)
	c.AppendListItem("создать прототип информационной системы и интеграционного решения;", 5)
	c.AppendListItem("провести тестирование корректности передачи и трансформации данных.", 6)

	c.AppendParagraph("В работе использованы методы системного анализа, объектно-ориентированного проектирования, а также современные практики разработки программного обеспечения: микросервисная архитектура, контейнеризация и непрерывная интеграция.", false, true)
}

func domainAnalysis(c *document.Composer) {
	c.AppendHeading(1, "1 Анализ предметной области")

	c.AppendHeading(2, "1.1 Описание бизнес-процесса")

	c.AppendParagraph("Для данного курсового проекта выбран бизнес-процесс «Построение маршрута для путешественника». Данный процесс является типичным для картографических сервисов и туристических приложений, где пользователю необходимо построить оптимальный маршрут между несколькими точками интереса.", false, true)

	c.AppendParagraph("Декомпозиция бизнес-процесса на элементарные этапы:", false, true)

	c.AppendListItem("Регистрация/аутентификация пользователя в системе;", 1)
	c.AppendListItem("Отображение интерактивной карты с возможностью навигации;", 2)
	c.AppendListItem("Добавление точек маршрута путём клика на карте;", 3)
	c.AppendListItem("Получение картографических тайлов для визуализации;", 4)
	c.AppendListItem("Расчёт оптимального маршрута между точками;", 5)
	c.AppendListItem("Отображение построенного маршрута на карте;", 6)
	c.AppendListItem("Сохранение маршрута в профиле пользователя.", 7)

	c.AppendParagraph("В процессе участвуют следующие роли:", false, true)

	c.AppendListItem("Пользователь (путешественник) – основной актор, инициирующий построение маршрута;", 0)
	c.AppendListItem("Система аутентификации – обеспечивает безопасный доступ к функциям;", 0)
	c.AppendListItem("Картографический сервис – предоставляет визуальное отображение карты;", 0)
	c.AppendListItem("Сервис маршрутизации – рассчитывает оптимальный путь.", 0)

	c.AppendHeading(2, "1.2 Выявление потоков данных")

	c.AppendParagraph("Анализ потоков данных между компонентами системы выявил следующие основные направления обмена информацией:", false, true)

	c.AppendParagraph("1. Поток аутентификации:", false, true)
	c.AppendListItem("Пользователь → Сервис аутентификации: учётные данные (email, пароль);", 0)
	c.AppendListItem("Сервис аутентификации → Пользователь: JWT токены (access, refresh).", 0)

	c.AppendParagraph("2. Поток картографических данных:", false, true)
	c.AppendListItem("Frontend → Сервис кеширования: запрос тайла (z, x, y);", 0)
	c.AppendListItem("Сервис кеширования → Frontend: изображение тайла или 404;", 0)
	c.AppendListItem("Сервис кеширования → Внешний провайдер: запрос тайла при отсутствии в кеше.", 0)

	c.AppendParagraph("3. Поток маршрутизации:", false, true)
	c.AppendListItem("Frontend → OSRM API: координаты точек маршрута;", 0)
	c.AppendListItem("OSRM API → Frontend: геометрия маршрута, расстояние, время.", 0)

	c.AppendHeading(2, "1.3 Концептуальная модель данных")

	c.AppendParagraph("Концептуальная модель данных системы включает следующие основные сущности:", false, true)

	c.AppendParagraph("User (Пользователь):", false, true)
	c.AppendListItem("id: UUID – уникальный идентификатор;", 0)
	c.AppendListItem("email: String – адрес электронной почты;", 0)
	c.AppendListItem("password_hash: String – хеш пароля;", 0)
	c.AppendListItem("created_at: Timestamp – дата регистрации;", 0)
	c.AppendListItem("updated_at: Timestamp – дата последнего обновления.", 0)

	c.AppendParagraph("Tile (Картографический тайл):", false, true)
	c.AppendListItem("z: Integer – уровень масштабирования;", 0)
	c.AppendListItem("x: Integer – координата по горизонтали;", 0)
	c.AppendListItem("y: Integer – координата по вертикали;", 0)
	c.AppendListItem("data: Binary – бинарные данные изображения;", 0)
	c.AppendListItem("cached_at: Timestamp – время кеширования.", 0)

	c.AppendParagraph("Route (Маршрут):", false, true)
	c.AppendListItem("id: UUID – уникальный идентификатор;", 0)
	c.AppendListItem("user_id: UUID – владелец маршрута;", 0)
	c.AppendListItem("waypoints: Array<Point> – точки маршрута;", 0)
	c.AppendListItem("geometry: GeoJSON – геометрия маршрута;", 0)
	c.AppendListItem("distance: Float – общая длина в метрах;", 0)
	c.AppendListItem("duration: Float – время прохождения в секундах.", 0)
}

func architectureDesign(c *document.Composer) {
	c.AppendHeading(1, "2 Проектирование архитектуры")

	c.AppendHeading(2, "2.1 Выбор шаблона интеграции")

	c.AppendParagraph("Для реализации интеграционного решения был проведён сравнительный анализ основных шаблонов интеграции:", false, true)

	c.AppendParagraph("1. Point-to-Point (Точка-точка) – прямое соединение между системами. Преимущества: простота реализации, низкая задержка. Недостатки: плохая масштабируемость, сложность поддержки при увеличении количества систем.", false, true)

	c.AppendParagraph("2. Enterprise Service Bus (ESB) – централизованная шина обмена сообщениями. Преимущества: единая точка управления, трансформация данных. Недостатки: единая точка отказа, высокая сложность.", false, true)

	c.AppendParagraph("3. API Gateway – единая точка входа для клиентских приложений. Преимущества: централизованная аутентификация, маршрутизация запросов, агрегация данных. Недостатки: дополнительная задержка.", false, true)

	c.AppendParagraph("4. Микросервисная архитектура с прямым взаимодействием через REST API. Преимущества: независимое развёртывание сервисов, технологическая гибкость, горизонтальное масштабирование. Недостатки: сложность отладки распределённых систем.", false, true)

	c.AppendParagraph("Для данного проекта выбрана микросервисная архитектура с элементами API Gateway (реализован через Nginx reverse proxy). Такой выбор обоснован следующими факторами:", false, true)

	c.AppendListItem("возможность использования различных технологий для каждого сервиса (Rust, Go, TypeScript);", 0)
	c.AppendListItem("независимое масштабирование компонентов под нагрузку;", 0)
	c.AppendListItem("изоляция отказов – сбой одного сервиса не влияет на другие;", 0)
	c.AppendListItem("упрощённое развёртывание через Docker контейнеры.", 0)

	c.AppendHeading(2, "2.2 Логическая архитектура решения")

	c.AppendParagraph("Разработанная архитектура включает следующие компоненты:", false, true)

	c.AppendParagraph("1. Frontend (React + TypeScript + Vite):", false, true)
	c.AppendListItem("интерактивная карта на базе Leaflet;", 0)
	c.AppendListItem("построение маршрутов через leaflet-routing-machine;", 0)
	c.AppendListItem("взаимодействие с backend через REST API.", 0)

	c.AppendParagraph("2. Auth Service (Rust + Axum):", false, true)
	c.AppendListItem("регистрация и аутентификация пользователей;", 0)
	c.AppendListItem("выдача и обновление JWT токенов;", 0)
	c.AppendListItem("хранение данных в PostgreSQL.", 0)

	c.AppendParagraph("3. Cache Service (Go + Gin):", false, true)
	c.AppendListItem("кеширование картографических тайлов;", 0)
	c.AppendListItem("три реализации хранилища: Map (in-memory), Filesystem, SQLite;", 0)
	c.AppendListItem("проксирование запросов к внешним tile-серверам.", 0)

	c.AppendParagraph("4. Nginx (Reverse Proxy):", false, true)
	c.AppendListItem("маршрутизация запросов между frontend и backend;", 0)
	c.AppendListItem("раздача статических файлов;", 0)
	c.AppendListItem("балансировка нагрузки (при необходимости).", 0)

	c.AppendParagraph("5. PostgreSQL:", false, true)
	c.AppendListItem("хранение данных пользователей;", 0)
	c.AppendListItem("поддержка транзакций и ACID-гарантий.", 0)

	c.AppendParagraph("Все компоненты объединены в единую Docker-сеть (guide_helper_network), что обеспечивает изолированное сетевое взаимодействие между контейнерами.", false, true)

	c.AppendHeading(2, "2.3 Выбор технологий и инструментов")

	c.AppendParagraph("Выбор технологий для каждого компонента обоснован следующими критериями:", false, true)

	c.AppendParagraph("Rust для сервиса аутентификации:", false, true)
	c.AppendListItem("безопасность памяти без сборщика мусора;", 0)
	c.AppendListItem("высокая производительность;", 0)
	c.AppendListItem("строгая типизация и проверка на этапе компиляции;", 0)
	c.AppendListItem("экосистема: Axum (веб-фреймворк), SQLx (работа с БД), jsonwebtoken (JWT).", 0)

	c.AppendParagraph("Go для сервиса кеширования:", false, true)
	c.AppendListItem("простота языка и быстрая разработка;", 0)
	c.AppendListItem("отличная поддержка конкурентности (горутины);", 0)
	c.AppendListItem("низкое потребление памяти;", 0)
	c.AppendListItem("экосистема: Gin (веб-фреймворк), Zap (логирование).", 0)

	c.AppendParagraph("TypeScript + React для frontend:", false, true)
	c.AppendListItem("типизация для надёжности кода;", 0)
	c.AppendListItem("богатая экосистема компонентов;", 0)
	c.AppendListItem("Vite для быстрой сборки и HMR.", 0)

	c.AppendParagraph("Docker и Docker Compose для контейнеризации:", false, true)
	c.AppendListItem("воспроизводимость окружения;", 0)
	c.AppendListItem("изоляция зависимостей;", 0)
	c.AppendListItem("простота развёртывания.", 0)
}

func integrationDevelopment(c *document.Composer) {
	c.AppendHeading(1, "3 Разработка интеграционного решения")

	c.AppendHeading(2, "3.1 Схема обмена данными")

	c.AppendParagraph("В системе используется синхронный обмен данными через REST API. Формат передачи данных – JSON для структурированных данных и бинарный формат для изображений тайлов.", false, true)

	c.AppendParagraph("Основные эндпоинты API:", false, true)

	c.AppendParagraph("Auth Service (порт 8080):", false, true)
	c.AppendListItem("GET /healthz – проверка работоспособности сервиса;", 0)
	c.AppendListItem("POST /api/v1/auth/register – регистрация пользователя;", 0)
	c.AppendListItem("POST /api/v1/auth/login – вход в систему;", 0)
	c.AppendListItem("POST /api/v1/auth/refresh – обновление access токена.", 0)

	c.AppendParagraph("Cache Service (порт 8080):", false, true)
	c.AppendListItem("GET /api/v1/healthz – проверка работоспособности;", 0)
	c.AppendListItem("GET /api/v1/tile/:z/:x/:y – получение тайла по координатам.", 0)

	c.AppendHeading(2, "3.2 Контракты сообщений")

	c.AppendParagraph("Контракт регистрации пользователя:", false, true)

	c.AppendParagraph("Запрос (POST /api/v1/auth/register):", false, false)
	c.AppendParagraph("{\n  \"email\": \"user@example.com\",\n  \"password\": \"securePassword123\"\n}", false, false)

	c.AppendParagraph("Успешный ответ (201 Created):", false, false)
	c.AppendParagraph("{\n  \"id\": \"550e8400-e29b-41d4-a716-446655440000\",\n  \"email\": \"user@example.com\",\n  \"created_at\": \"2025-01-15T10:30:00Z\"\n}", false, false)

	c.AppendParagraph("Контракт аутентификации:", false, true)

	c.AppendParagraph("Запрос (POST /api/v1/auth/login):", false, false)
	c.AppendParagraph("{\n  \"email\": \"user@example.com\",\n  \"password\": \"securePassword123\"\n}", false, false)

	c.AppendParagraph("Успешный ответ (200 OK):", false, false)
	c.AppendParagraph("{\n  \"access_token\": \"eyJhbGciOiJIUzI1NiIs...\",\n  \"refresh_token\": \"eyJhbGciOiJIUzI1NiIs...\",\n  \"token_type\": \"Bearer\",\n  \"expires_in\": 900\n}", false, false)

	c.AppendParagraph("Контракт получения тайла:", false, true)
	c.AppendParagraph("Запрос: GET /api/v1/tile/15/19456/11256", false, false)
	c.AppendParagraph("Ответ: бинарные данные изображения (image/png) или 404 Not Found.", false, false)

	c.AppendHeading(2, "3.3 Обработка ошибок")

	c.AppendParagraph("Для обработки ошибок разработан единый формат ответа:", false, true)

	c.AppendParagraph("{\n  \"error\": {\n    \"code\": \"INVALID_CREDENTIALS\",\n    \"message\": \"Invalid email or password\",\n    \"details\": null\n  }\n}", false, false)

	c.AppendParagraph("Обрабатываемые сценарии ошибок:", false, true)

	c.AppendListItem("INVALID_CREDENTIALS – неверные учётные данные при входе;", 1)
	c.AppendListItem("USER_ALREADY_EXISTS – пользователь с таким email уже зарегистрирован;", 2)
	c.AppendListItem("TOKEN_EXPIRED – срок действия токена истёк;", 3)
	c.AppendListItem("INVALID_TOKEN – недействительный токен;", 4)
	c.AppendListItem("TILE_NOT_FOUND – тайл не найден в кеше и у провайдера;", 5)
	c.AppendListItem("INTERNAL_ERROR – внутренняя ошибка сервера.", 6)

	c.AppendParagraph("При возникновении ошибок в сервисе кеширования применяется стратегия graceful degradation: при недоступности внешнего tile-сервера возвращается кешированная версия тайла (если доступна) или placeholder-изображение.", false, true)
}

func implementationAndTesting(c *document.Composer) error {
	c.AppendHeading(1, "4 Реализация и тестирование")

	c.AppendHeading(2, "4.1 Реализация прототипа")

	c.AppendParagraph("Прототип системы реализован в соответствии с разработанной архитектурой. Структура проекта организована по принципу монорепозитория:", false, true)

	c.AppendParagraph("/\n├── frontend/           # React приложение\n├── backend/\n│   ├── auth/          # Rust сервис аутентификации\n│   └── cache/         # Go сервис кеширования\n└── docker-compose.yml # Оркестрация контейнеров", false, false)

	c.AppendParagraph("Сервис аутентификации (Auth Service) реализует паттерн Clean Architecture с разделением на слои:", false, true)

	c.AppendListItem("domain – доменные модели (User);", 0)
	c.AppendListItem("usecase – бизнес-логика (AuthUseCase, JwtService, PasswordService);", 0)
	c.AppendListItem("repository – работа с хранилищем данных (PostgresUserRepository);", 0)
	c.AppendListItem("delivery – HTTP обработчики (AuthHandler).", 0)

	c.AppendParagraph("Сервис кеширования (Cache Service) реализует три варианта хранилища с единым интерфейсом:", false, true)

	c.AppendParagraph("type Cache interface {\n    Get(key string) ([]byte, error)\n    Set(key string, value []byte) error\n}", false, false)

	c.AppendParagraph("Реализации кеша:", false, true)
	c.AppendListItem("MapCache – хранение в sync.Map (in-memory);", 0)
	c.AppendListItem("FilesystemCache – хранение на файловой системе;", 0)
	c.AppendListItem("SQLiteCache – хранение в базе данных SQLite.", 0)

	c.AppendParagraph("Frontend реализован как SPA (Single Page Application) на React с использованием библиотеки Leaflet для отображения карты. Маршрутизация между точками выполняется через OSRM API.", false, true)

	c.AppendHeading(2, "4.2 Тестирование")

	c.AppendParagraph("Для сервиса кеширования разработан комплексный набор бенчмарков, позволяющий сравнить производительность различных реализаций хранилища.", false, true)

	c.AppendParagraph("Результаты бенчмарков операции записи (Set):", false, true)

	if err := c.AppendTable(
		[]string{"Реализация", "ns/op", "B/op", "allocs/op"},
		[][]string{
			{"MapCache", "220", "32", "1"},
			{"FilesystemCache", "8000", "512", "5"},
			{"SQLiteCache", "78000", "1024", "12"},
		},
	); err != nil {
		return err
	}

	blankLines(c, 1)

	c.AppendParagraph("Результаты показывают, что MapCache обеспечивает наилучшую производительность для операций записи и чтения, однако не сохраняет данные между перезапусками. FilesystemCache предоставляет хороший баланс между производительностью и персистентностью. SQLiteCache обеспечивает ACID-гарантии, но имеет наибольшую задержку.", false, true)

	c.AppendParagraph("Функциональное тестирование включало:", false, true)
	c.AppendListItem("проверку регистрации и аутентификации пользователей;", 1)
	c.AppendListItem("тестирование выдачи и обновления JWT токенов;", 2)
	c.AppendListItem("проверку кеширования тайлов;", 3)
	c.AppendListItem("тестирование построения маршрутов на карте;", 4)
	c.AppendListItem("проверку обработки ошибок.", 5)

	c.AppendParagraph("Все функциональные тесты пройдены успешно. Система корректно обрабатывает штатные и ошибочные сценарии.", false, true)
	return nil
}

func conclusion(c *document.Composer) {
	c.AppendHeading(1, "Заключение")

	c.AppendParagraph("В ходе выполнения курсового проекта была разработана архитектура и реализован прототип интеграционного решения для взаимодействия информационных систем предприятия на примере картографического сервиса построения маршрутов.", false, true)

	c.AppendParagraph("Основные результаты работы:", false, true)

	c.AppendListItem("Проведён анализ предметной области, выполнена декомпозиция бизнес-процесса «Построение маршрута», выявлены потоки данных между компонентами системы и разработана концептуальная модель данных.", 1)
	c.AppendListItem("Разработана архитектура интеграционного решения на основе микросервисного подхода. Выбор обоснован требованиями к масштабируемости, изоляции отказов и возможности использования различных технологий.", 2)
	c.AppendListItem("Выбраны и обоснованы технологии реализации: Rust с Axum для сервиса аутентификации, Go с Gin для сервиса кеширования, React с TypeScript для frontend, PostgreSQL для хранения данных, Docker для контейнеризации.", 3)
	c.AppendListItem("Разработана схема обмена данными в формате JSON, определены контракты сообщений для всех точек интеграции, описаны алгоритмы обработки ошибок.", 4)
	c.AppendListItem("Реализован работающий прототип системы, включающий сервис аутентификации с JWT токенами, сервис кеширования с тремя реализациями хранилища, web-интерфейс с интерактивной картой.", 5)
	c.AppendListItem("Проведено тестирование системы, включая бенчмарки производительности реализаций кеша и функциональное тестирование всех компонентов.", 6)

	c.AppendParagraph("Разработанное решение демонстрирует современные подходы к интеграции информационных систем и может быть использовано как основа для создания полнофункционального картографического сервиса.", false, true)

	c.AppendParagraph("Направления дальнейшего развития:", false, true)
	c.AppendListItem("добавление асинхронного обмена сообщениями через брокер (RabbitMQ, Kafka);", 0)
	c.AppendListItem("реализация API Gateway с централизованной аутентификацией;", 0)
	c.AppendListItem("добавление мониторинга и трассировки запросов;", 0)
	c.AppendListItem("разработка мобильного приложения.", 0)
}

func referenceList(c *document.Composer) {
	c.AppendHeading(1, "Список использованных источников")

	references := []string{
		"ГОСТ 7.32-2017. Межгосударственный стандарт. Система стандартов по информации, библиотечному и издательскому делу. Отчет о научно-исследовательской работе. Структура и правила оформления.",
		"Hohpe, G. Enterprise Integration Patterns: Designing, Building, and Deploying Messaging Solutions / G. Hohpe, B. Woolf. – Addison-Wesley, 2003. – 736 p.",
		"Newman, S. Building Microservices: Designing Fine-Grained Systems / S. Newman. – 2nd ed. – O'Reilly Media, 2021. – 616 p.",
		"Richardson, C. Microservices Patterns: With examples in Java / C. Richardson. – Manning Publications, 2018. – 520 p.",
		"Kleppmann, M. Designing Data-Intensive Applications / M. Kleppmann. – O'Reilly Media, 2017. – 616 p.",
		"Rust Programming Language [Электронный ресурс]. – Режим доступа: https://www.rust-lang.org/ (дата обращения: 10.12.2025).",
		"Go Programming Language [Электронный ресурс]. – Режим доступа: https://go.dev/ (дата обращения: 10.12.2025).",
		"React Documentation [Электронный ресурс]. – Режим доступа: https://react.dev/ (дата обращения: 10.12.2025).",
		"Docker Documentation [Электронный ресурс]. – Режим доступа: https://docs.docker.com/ (дата обращения: 10.12.2025).",
		"Leaflet – an open-source JavaScript library for interactive maps [Электронный ресурс]. – Режим доступа: https://leafletjs.com/ (дата обращения: 10.12.2025).",
		"OSRM – Open Source Routing Machine [Электронный ресурс]. – Режим доступа: https://project-osrm.org/ (дата обращения: 10.12.2025).",
		"PostgreSQL Documentation [Электронный ресурс]. – Режим доступа: https://www.postgresql.org/docs/ (дата обращения: 10.12.2025).",
		"JWT.io – JSON Web Tokens [Электронный ресурс]. – Режим доступа: https://jwt.io/ (дата обращения: 10.12.2025).",
		"Axum – Ergonomic and modular web framework [Электронный ресурс]. – Режим доступа: https://github.com/tokio-rs/axum (дата обращения: 10.12.2025).",
		"Gin Web Framework [Электронный ресурс]. – Режим доступа: https://gin-gonic.com/ (дата обращения: 10.12.2025).",
	}
	for i, ref := range references {
		c.AppendReference(i+1, ref)
	}
}
